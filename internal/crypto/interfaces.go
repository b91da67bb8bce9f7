package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher is the one-way credential hashing component.
// It knows nothing about users, storage, or transport; its only job is to
// turn plaintext passwords into salted digests and to check candidates
// against stored digests.
type PasswordHasher interface {
	// Hash derives a salted one-way digest from plaintext.
	// The salt is generated per call and embedded in the output, so two
	// hashes of the same password differ. Returns ErrEmptyPassword when
	// plaintext is empty.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext reproduces digest.
	// The outcome is always a plain boolean: a malformed digest, a salt
	// mismatch, and a wrong password are all indistinguishable false
	// results, so callers cannot build an oracle out of failure kinds.
	Verify(plaintext string, digest string) bool
}
