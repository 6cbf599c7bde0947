package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./berean.db"

	// DefaultBibleDataDir is the default location of the pre-converted
	// scripture data produced by the offline conversion pipeline
	DefaultBibleDataDir = "./data/converted"
)
