package shytrace

// SplitLines splits text on "\r\n", "\r" or "\n". Consecutive separators are
// not collapsed and empty lines are kept, so the result always has one more
// element than the number of separators found.
func SplitLines(text string) []string {
	lines := make([]string, 0, 16)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	return append(lines, text[start:])
}
