package generator

import "strings"

// splitTopLevel splits s on commas that sit outside any nested braces,
// parentheses or square brackets, trimming each part and dropping empties.
// It backs both enum variant splitting and argument/field splitting.
//
// Angle brackets are deliberately not tracked: generic types carrying
// commas, like HashMap<K, V>, mis-split. Known limitation.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0

	appendPart := func(end int) {
		if part := strings.TrimSpace(s[start:end]); part != "" {
			parts = append(parts, part)
		}
	}

	for i, r := range s {
		switch r {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
		case ',':
			if depth == 0 {
				appendPart(i)
				start = i + 1
			}
		}
	}
	appendPart(len(s))

	return parts
}

// balancedSlice extracts the text between the first open byte at or after
// start and its matching close byte. end points just past the closer.
func balancedSlice(s string, start int, open, close byte) (body string, end int, ok bool) {
	from := strings.IndexByte(s[start:], open)
	if from < 0 {
		return "", 0, false
	}
	from += start

	depth := 0
	for i := from; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[from+1 : i], i + 1, true
			}
		}
	}
	return "", 0, false
}
