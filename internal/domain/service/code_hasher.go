package service

// CodeHasher hashes one-time sign-in codes before they are stored, so a
// database leak does not expose usable codes.
type CodeHasher interface {
	// Hash produces a storable hash of the plaintext code.
	Hash(code string) (string, error)

	// Check reports whether the plaintext code matches the stored hash.
	Check(code, hash string) bool
}
