package stepwise

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Query       int // Submitted query accent
	Thought     int // Thinking steps
	Observation int // Observation steps
	Code        int // Code execution steps
	Solution    int // Solution steps
	Error       int // Error messages
	Success     int // Completion indicators
	Muted       int // Status bar, placeholders
	Accent      int // Headings, links
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Query:       4,
		Thought:     5,
		Observation: 6,
		Code:        2,
		Solution:    3,
		Error:       1,
		Success:     2,
		Muted:       8,
		Accent:      5,
	}
}

// Color returns the theme color for a step kind.
func (t Theme) Color(k StepKind) int {
	switch k {
	case KindThought:
		return t.Thought
	case KindObservation:
		return t.Observation
	case KindCode:
		return t.Code
	case KindSolution:
		return t.Solution
	default:
		return t.Muted
	}
}
