package himalaya

// Config holds the settings for a data Manager.
type Config struct {
	// DataPath is the directory containing the four CSV tables
	// (exped.csv, members.csv, peaks.csv, refer.csv).
	DataPath string
	// Verbose enables per-table load logging.
	Verbose bool
}
