package tablefmt

// Theme defines semantic color mappings for the terminal preview using ANSI
// color indices (0-15). A negative index disables the color.
type Theme struct {
	Header int `toml:"header"` // Header row text
	Border int `toml:"border"` // Box-drawing characters
	Cell   int `toml:"cell"`   // Body row text
	Muted  int `toml:"muted"`  // Empty padded cells
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Header: 5,
		Border: 8,
		Cell:   -1,
		Muted:  8,
	}
}
