package generator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	structHeadRe = regexp.MustCompile(`\bstruct\s+([A-Za-z_][A-Za-z0-9_]*)`)

	// unitStructRe matches fieldless declarations: `struct Marker;` or an
	// empty braced body. These carry no documentable members.
	unitStructRe = regexp.MustCompile(
		`\bstruct\s+[A-Za-z_][A-Za-z0-9_]*\s*(?:<[^>]*>)?\s*(?:;|\{\s*\})`)
)

// AnalyzeStruct decomposes a normalized struct declaration into its ordered
// fields and renders the documentation template. Unit structs and anything
// that fails the structural match yield ok=false.
//
// Tuple-style fields are named positionally as field_0, field_1, ... in
// declaration order.
func AnalyzeStruct(signature string, opts Options) (string, bool) {
	signature = strings.TrimSpace(signature)
	if unitStructRe.MatchString(signature) {
		return "", false
	}
	isPublicOrExtern := publicOrExternRe.MatchString(signature)

	sig := visibilityRe.ReplaceAllString(signature, "")
	head := structHeadRe.FindStringSubmatchIndex(sig)
	if head == nil {
		return "", false
	}
	name := sig[head[2]:head[3]]

	fields, tuple, ok := parseStructBody(sig, head[1])
	if !ok {
		return "", false
	}

	ph := newPlaceholders()
	lines := []string{descriptionSlot}

	if len(fields) > 0 {
		body := make([]string, 0, len(fields))
		for _, f := range fields {
			body = append(body, paramBullet(f, ph))
		}
		lines = appendSection(lines, "# Fields", body...)
	}

	if opts.IncludeExamples && (!opts.ExamplesOnlyForPublicOrExtern || isPublicOrExtern) {
		lines = appendSection(lines, "# Examples", structExample(name, fields, tuple, ph)...)
	}

	return renderDocBlock(lines), true
}

// parseStructBody extracts the field list from whichever body style follows
// the struct name: a parenthesized tuple body or a braced field body.
func parseStructBody(sig string, from int) (fields []Param, tuple bool, ok bool) {
	rest := sig[from:]
	open := strings.IndexAny(rest, "({")
	if open < 0 {
		return nil, false, false
	}

	if rest[open] == '(' {
		body, _, found := balancedSlice(sig, from, '(', ')')
		if !found {
			return nil, false, false
		}
		for i, typ := range splitTopLevel(body) {
			typ = visibilityRe.ReplaceAllString(strings.TrimSpace(typ), "")
			fields = append(fields, Param{Name: fmt.Sprintf("field_%d", i), Type: typ})
		}
		return fields, true, true
	}

	body, _, found := balancedSlice(sig, from, '{', '}')
	if !found {
		return nil, false, false
	}
	for _, raw := range splitTopLevel(body) {
		raw = visibilityRe.ReplaceAllString(strings.TrimSpace(raw), "")
		name, typ, hasColon := strings.Cut(raw, ":")
		if !hasColon {
			fields = append(fields, Param{Name: strings.TrimSpace(name)})
			continue
		}
		fields = append(fields, Param{
			Name: strings.TrimSpace(name),
			Type: strings.TrimSpace(typ),
		})
	}
	return fields, false, true
}

// structExample renders an instantiation with every member set to a generic
// value token: a brace literal for field bodies, a positional literal for
// tuple bodies.
func structExample(name string, fields []Param, tuple bool, ph *placeholders) []string {
	lines := []string{
		"```",
		fmt.Sprintf("use %s::%s;", ph.reserve("crate"), name),
		"",
	}
	binding := strings.ToLower(name)

	if tuple {
		vals := make([]string, len(fields))
		for i := range fields {
			vals[i] = "value"
		}
		lines = append(lines,
			fmt.Sprintf("let %s = %s(%s);", binding, name, strings.Join(vals, ", ")))
	} else {
		lines = append(lines, fmt.Sprintf("let %s = %s {", binding, name))
		for _, f := range fields {
			lines = append(lines, fmt.Sprintf("    %s: value,", f.Name))
		}
		lines = append(lines, "};")
	}

	return append(lines, "```")
}
