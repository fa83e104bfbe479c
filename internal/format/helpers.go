package format

import "fmt"

// Score formats a dimension or total score with three decimals.
func Score(v float64) string { return fmt.Sprintf("%.3f", v) }

// Delta formats a signed score difference, "0.000" when zero.
func Delta(v float64) string {
	if v == 0 {
		return "0.000"
	}
	return fmt.Sprintf("%+.3f", v)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
