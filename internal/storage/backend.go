package storage

// Backend is a string-keyed key-value store. The planner core persists day
// records through this interface and never depends on which concrete backend
// implements it.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value for key. The second return is false when the key
	// does not exist; an error is returned only for backend failures.
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any existing value. The write is
	// atomic: a reader never observes a partially written value.
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// ListKeys returns all keys with the given prefix, in no particular order.
	ListKeys(prefix string) ([]string, error)

	// Path returns the backend's data location (file, directory or DSN).
	Path() string
}
