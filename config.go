package tablefmt

// Config holds the settings of the command-line formatter. Values come from
// DefaultConfig, then an optional config file, then flags.
type Config struct {
	// Write rewrites each input file in place instead of printing it.
	Write bool `toml:"write"`

	// Check re-parses the output as GFM and fails on a schema mismatch.
	Check bool `toml:"check"`

	// Preview prints a boxed terminal rendering after the table.
	Preview bool `toml:"preview"`

	// Schema prints the inferred column schema as JSON.
	Schema bool `toml:"schema"`

	Theme Theme `toml:"theme"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{Theme: DefaultTheme()}
}
