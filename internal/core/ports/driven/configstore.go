package driven

// ConfigStore holds the user's settings as flat dot-notation keys
// ("catalog.source", "planner.default_target").
type ConfigStore interface {
	// Get returns the raw value stored under key and whether it exists.
	Get(key string) (any, bool)

	// GetString returns the value under key, or "" when the key is
	// missing or holds a non-string value.
	GetString(key string) string

	// Set stores value under key and persists it before returning.
	Set(key string, value any) error

	// Path locates the backing file, for display in logs.
	Path() string
}
