package scribe

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme. A negative index means no color.
type Theme struct {
	Title   int // App title, focused field accent
	Label   int // Form labels
	Error   int // Failure messages
	Warning int // Service unreachable, soft warnings
	Success int // Connected status, saved exports
	Muted   int // Status bar, placeholders, hints
	Accent  int // Headings, links, slider fill
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Title:   5,
		Label:   4,
		Error:   1,
		Warning: 3,
		Success: 2,
		Muted:   8,
		Accent:  6,
	}
}
