// Package identity provides agent identities for signing dispatched
// messages: a seed-derived production identity and a fixed test double.
package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
)

// Ensure both implementations satisfy the interface.
var (
	_ driven.Identity = (*SeedIdentity)(nil)
	_ driven.Identity = (*StaticIdentity)(nil)
)

// addressPrefix marks marketplace agent addresses.
const addressPrefix = "agent1q"

// addressBodyLength is the hex-encoded length of the address body.
const addressBodyLength = 56

// SeedIdentity derives a stable address and signing key from a secret
// seed phrase. The same seed always yields the same address, so an
// operator keeps their marketplace identity across restarts.
type SeedIdentity struct {
	address string
	key     []byte
}

// NewSeedIdentity creates an identity from a non-empty seed phrase.
func NewSeedIdentity(seed string) (*SeedIdentity, error) {
	if seed == "" {
		return nil, fmt.Errorf("identity: seed is required")
	}

	sum := sha256.Sum256([]byte(seed))
	body := hex.EncodeToString(sum[:])[:addressBodyLength]

	keySum := sha256.Sum256([]byte("signing-key:" + seed))
	return &SeedIdentity{
		address: addressPrefix + body,
		key:     keySum[:],
	}, nil
}

// Address returns the stable marketplace address for this identity.
func (i *SeedIdentity) Address() string {
	return i.address
}

// SignDigest signs a digest with the seed-derived key.
func (i *SeedIdentity) SignDigest(digest []byte) string {
	mac := hmac.New(sha256.New, i.key)
	mac.Write(digest)
	return hex.EncodeToString(mac.Sum(nil))
}

// StaticIdentity is a deterministic identity for tests and dry runs. It
// never touches key material and always produces the same address.
type StaticIdentity struct {
	Addr string
}

// Address returns the fixed address, or a recognisable placeholder.
func (i StaticIdentity) Address() string {
	if i.Addr == "" {
		return addressPrefix + "00000000000000000000000000000000000000000000000000000000"
	}
	return i.Addr
}

// SignDigest returns the hex digest itself. The signature is not
// verifiable; dry runs only need a syntactically valid envelope.
func (i StaticIdentity) SignDigest(digest []byte) string {
	return hex.EncodeToString(digest)
}
