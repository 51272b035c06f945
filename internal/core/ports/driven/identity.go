package driven

// Identity is the agent identity used for signing dispatched messages.
// Exactly one real implementation (seed-derived) and one deterministic
// test double exist; configuration selects which is used.
type Identity interface {
	// Address returns the stable marketplace address for this identity.
	Address() string

	// SignDigest signs a digest and returns the encoded signature.
	SignDigest(digest []byte) string
}
