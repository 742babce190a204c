package interfaces

// IPasswordHasher abstracts the one-way credential hash so the usecase never
// depends on the algorithm.

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
}
