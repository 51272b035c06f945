package driven

import "github.com/sneaxhuh/sentinel/internal/core/domain"

// FactStore is an exact-match triple lookup over the knowledge base.
//
// FactsFor returns every value registered under (relation, subject); the
// empty slice means "this source abstains" and is never an error.
// AddFact appends a triple; dynamically added facts do not survive a
// restart, only the static seed does.
type FactStore interface {
	FactsFor(relation domain.Relation, subject string) []string
	AddFact(relation domain.Relation, subject, value string)
}
