package interfaces

// IPinHasher hashes PINs for storage and verifies presented PINs against stored hashes.

type IPinHasher interface {
	Hash(pin string) (string, error)
	Verify(hash, pin string) error
}
