package util

// TruncateRunes truncates a string to maxRunes characters (rune-based, not
// byte-based), appending "..." when it had to cut.
func TruncateRunes(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
