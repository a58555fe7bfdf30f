package session

// Storage keys for persisted credentials.
const (
	KeyAuthToken = "authToken"
	KeyTokenType = "tokenType"
	KeyUser      = "user"
)

// Store is persistent key-value storage for auth credentials. Implementations
// are injected wherever auth state is needed so tests can substitute a fake.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
