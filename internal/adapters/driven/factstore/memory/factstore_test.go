package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/services"
)

func TestNewFactStore(t *testing.T) {
	store := NewFactStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.facts)
}

func TestFactStore_AddFact_And_FactsFor(t *testing.T) {
	store := NewFactStore()

	store.AddFact(domain.RelationProjectFeature, "web_app", "user_authentication")
	store.AddFact(domain.RelationProjectFeature, "web_app", "api_endpoints")

	values := store.FactsFor(domain.RelationProjectFeature, "web_app")
	assert.Equal(t, []string{"user_authentication", "api_endpoints"}, values)
}

func TestFactStore_FactsFor_Unknown(t *testing.T) {
	store := NewFactStore()

	values := store.FactsFor(domain.RelationProjectFeature, "nonexistent")
	assert.Empty(t, values)
}

func TestFactStore_AddFact_Duplicate(t *testing.T) {
	store := NewFactStore()

	store.AddFact(domain.RelationFeatureDescription, "caching", "Add caching layer")
	store.AddFact(domain.RelationFeatureDescription, "caching", "Add caching layer")

	values := store.FactsFor(domain.RelationFeatureDescription, "caching")
	assert.Len(t, values, 1)
}

func TestFactStore_FactsFor_ReturnsCopy(t *testing.T) {
	store := NewFactStore()
	store.AddFact(domain.RelationPRAnalysis, "bugfix", "root_cause")

	values := store.FactsFor(domain.RelationPRAnalysis, "bugfix")
	values[0] = "mutated"

	again := store.FactsFor(domain.RelationPRAnalysis, "bugfix")
	assert.Equal(t, []string{"root_cause"}, again)
}

func TestNewSeededFactStore(t *testing.T) {
	store := NewSeededFactStore(services.SeedFacts())

	features := store.FactsFor(domain.RelationProjectFeature, string(domain.ProjectWebApp))
	require.NotEmpty(t, features)

	patterns := store.FactsFor(domain.RelationFilePattern, "test")
	assert.Contains(t, patterns, string(domain.PRFeature))
}

func TestFactStore_ConcurrentAccess(t *testing.T) {
	store := NewFactStore()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.AddFact(domain.RelationProjectFeature, "web_app", "search")
		}()
		go func() {
			defer wg.Done()
			_ = store.FactsFor(domain.RelationProjectFeature, "web_app")
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"search"}, store.FactsFor(domain.RelationProjectFeature, "web_app"))
}
