package config

// Config holds all configuration for the application.
type Config struct {
	// DataDir is the root holding the real roster, match workbooks and
	// soft-delete registry.
	DataDir string
	// MockDataDir is the fallback root served until real data shows up.
	MockDataDir string
	Port        string
}
