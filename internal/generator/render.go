package generator

import "strings"

// docMarker prefixes every rendered line except the first; the first line is
// assumed already positioned after the marker the user typed.
const docMarker = "///"

// renderDocBlock joins template lines into the final insertion string.
// Blank separator lines render as a bare marker.
func renderDocBlock(lines []string) string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(docMarker)
			if line == "" {
				continue
			}
			sb.WriteByte(' ')
		}
		sb.WriteString(line)
	}
	return sb.String()
}

// appendSection adds a blank separator, a section header, and the body when
// one exists. A section may legitimately have no body, e.g. # Safety on an
// extern function when detail bullets are disabled.
func appendSection(lines []string, header string, body ...string) []string {
	lines = append(lines, "", header)
	if len(body) > 0 {
		lines = append(lines, "")
		lines = append(lines, body...)
	}
	return lines
}
