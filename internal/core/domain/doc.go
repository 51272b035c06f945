// Package domain contains the core business entities for sentinel:
// canonical suggestions, classification vocabularies, fact triples,
// repository and pull request references, and analysis reports.
// It has no dependencies on adapters or external services.
package domain
