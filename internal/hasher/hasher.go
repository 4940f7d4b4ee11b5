package hasher

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Supported hashing schemes
const (
	SchemeArgon2id = "argon2id"
	SchemeBcrypt   = "bcrypt"
)

// argon2id parameters embedded in every new digest
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// maxArgonMemory caps the m parameter accepted from stored digests (KiB);
// a corrupt digest must not be able to demand an arbitrarily large allocation
const maxArgonMemory = 1 << 21 // 2 GiB

// Hasher hashes and verifies passwords against a configurable list of
// schemes. New digests always use the first scheme in the list; digests
// produced by any listed scheme still verify, which allows rotating the
// primary algorithm without invalidating stored hashes.
type Hasher struct {
	schemes []string
}

// New creates a hasher with the given scheme preference order.
// An empty list falls back to argon2id with bcrypt verification.
func New(schemes []string) *Hasher {
	if len(schemes) == 0 {
		schemes = []string{SchemeArgon2id, SchemeBcrypt}
	}
	return &Hasher{schemes: schemes}
}

// Hash produces a self-describing digest of the plaintext using the
// primary scheme
func (h *Hasher) Hash(plaintext string) (string, error) {
	switch h.schemes[0] {
	case SchemeArgon2id:
		return hashArgon2id(plaintext)
	case SchemeBcrypt:
		digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		return string(digest), nil
	default:
		return "", fmt.Errorf("unsupported hashing scheme: %s", h.schemes[0])
	}
}

// Verify reports whether the plaintext reproduces the digest under the
// digest's own embedded algorithm. Malformed digests and digests from
// schemes outside the configured list verify false, never error.
func (h *Hasher) Verify(plaintext, digest string) bool {
	scheme := detectScheme(digest)
	if !h.allowed(scheme) {
		return false
	}

	switch scheme {
	case SchemeArgon2id:
		return verifyArgon2id(plaintext, digest)
	case SchemeBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
	default:
		return false
	}
}

func (h *Hasher) allowed(scheme string) bool {
	for _, s := range h.schemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// detectScheme reads the algorithm tag off the front of a digest
func detectScheme(digest string) string {
	switch {
	case strings.HasPrefix(digest, "$argon2id$"):
		return SchemeArgon2id
	case strings.HasPrefix(digest, "$2a$"), strings.HasPrefix(digest, "$2b$"), strings.HasPrefix(digest, "$2y$"):
		return SchemeBcrypt
	default:
		return ""
	}
}

// hashArgon2id produces a PHC-formatted argon2id digest:
// $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func hashArgon2id(plaintext string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// verifyArgon2id re-derives the key with the parameters embedded in the
// digest and compares in constant time
func verifyArgon2id(plaintext, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false
	}
	if version != argon2.Version {
		return false
	}

	var memory, passes uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &passes, &threads); err != nil {
		return false
	}
	// argon2.IDKey panics on zero passes or threads
	if passes < 1 || threads < 1 || memory > maxArgonMemory {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(plaintext), salt, passes, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
