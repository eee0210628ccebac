package strutil

// LStripWS strips leading spaces and horizontal tabs, the only optional
// whitespace HTTP permits around a header value.
func LStripWS(str string) string {
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case ' ', '\t':
		default:
			return str[i:]
		}
	}

	return ""
}

// RStripWS strips trailing spaces and horizontal tabs.
func RStripWS(str string) string {
	for i := len(str); i > 0; i-- {
		switch str[i-1] {
		case ' ', '\t':
		default:
			return str[:i]
		}
	}

	return ""
}

// StripWS strips optional whitespace from both sides.
func StripWS(str string) string {
	return LStripWS(RStripWS(str))
}
