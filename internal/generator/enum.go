package generator

import (
	"fmt"
	"regexp"
	"strings"
)

// variantShape is the structural shape of one enum member.
type variantShape int

const (
	variantUnit variantShape = iota
	variantTuple
	variantStruct
	variantUnknown
)

// variant is one enum member. Types holds the tuple payload, Fields the
// named-field payload; Raw keeps the original text for the unknown fallback.
type variant struct {
	Shape  variantShape
	Name   string
	Types  []string
	Fields []string
	Raw    string
}

var (
	enumHeadRe = regexp.MustCompile(`\benum\s+([A-Za-z_][A-Za-z0-9_]*)`)

	unitVariantRe   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	tupleVariantRe  = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*\((.*)\)$`)
	structVariantRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*\{(.*)\}$`)
)

// AnalyzeEnum decomposes a normalized enum declaration into its ordered
// variants and renders the documentation template. A declaration without a
// braced, non-empty body yields ok=false.
func AnalyzeEnum(signature string, opts Options) (string, bool) {
	// the scanner strips comments per line; a caller-supplied signature may
	// still carry one.
	if idx := strings.Index(signature, "//"); idx >= 0 {
		signature = signature[:idx]
	}
	signature = strings.TrimSpace(signature)
	isPublicOrExtern := publicOrExternRe.MatchString(signature)

	head := enumHeadRe.FindStringSubmatchIndex(signature)
	if head == nil {
		return "", false
	}
	name := signature[head[2]:head[3]]

	body, _, ok := balancedSlice(signature, head[1], '{', '}')
	if !ok || strings.TrimSpace(body) == "" {
		return "", false
	}

	var variants []variant
	for _, raw := range splitTopLevel(body) {
		variants = append(variants, classifyVariant(raw))
	}
	if len(variants) == 0 {
		return "", false
	}

	ph := newPlaceholders()
	lines := []string{descriptionSlot}

	bullets := make([]string, 0, len(variants))
	for _, v := range variants {
		bullets = append(bullets,
			fmt.Sprintf("* `%s` - %s", v.label(), ph.reserve("description")))
	}
	lines = appendSection(lines, "# Variants", bullets...)

	if opts.IncludeExamples && (!opts.ExamplesOnlyForPublicOrExtern || isPublicOrExtern) {
		lines = appendSection(lines, "# Examples", enumExample(name, variants, ph)...)
	}

	return renderDocBlock(lines), true
}

// classifyVariant sorts a variant into unit, tuple-payload or
// named-field-payload shape. Anything else, e.g. an explicit discriminant,
// falls back to the raw text.
func classifyVariant(raw string) variant {
	raw = strings.TrimSpace(raw)

	if unitVariantRe.MatchString(raw) {
		return variant{Shape: variantUnit, Name: raw, Raw: raw}
	}
	if m := tupleVariantRe.FindStringSubmatch(raw); m != nil {
		return variant{
			Shape: variantTuple,
			Name:  m[1],
			Types: splitTopLevel(m[2]),
			Raw:   raw,
		}
	}
	if m := structVariantRe.FindStringSubmatch(raw); m != nil {
		var names []string
		for _, f := range splitTopLevel(m[2]) {
			fieldName, _, _ := strings.Cut(f, ":")
			names = append(names, strings.TrimSpace(fieldName))
		}
		return variant{Shape: variantStruct, Name: m[1], Fields: names, Raw: raw}
	}
	return variant{Shape: variantUnknown, Raw: raw}
}

// label is the doc-bullet text for one variant.
func (v variant) label() string {
	switch v.Shape {
	case variantUnit:
		return v.Name
	case variantTuple:
		return fmt.Sprintf("%s(%s)", v.Name, strings.Join(v.Types, ", "))
	case variantStruct:
		return fmt.Sprintf("%s { %s }", v.Name, strings.Join(v.Fields, ", "))
	default:
		return v.Raw
	}
}

// matchArm is the pattern used for this variant in the example match
// expression. Tuple payloads synthesize positional bindings v0, v1, ...
func (v variant) matchArm(enumName string) string {
	switch v.Shape {
	case variantUnit:
		return fmt.Sprintf("%s::%s", enumName, v.Name)
	case variantTuple:
		bindings := make([]string, len(v.Types))
		for i := range v.Types {
			bindings[i] = fmt.Sprintf("v%d", i)
		}
		return fmt.Sprintf("%s::%s(%s)", enumName, v.Name, strings.Join(bindings, ", "))
	case variantStruct:
		return fmt.Sprintf("%s::%s { %s }", enumName, v.Name, strings.Join(v.Fields, ", "))
	default:
		return v.Raw
	}
}

// instantiationHead derives the example value from the first variant: its
// text up to the first parenthesis or brace.
func (v variant) instantiationHead() string {
	head := v.Raw
	if idx := strings.IndexAny(head, "({"); idx >= 0 {
		head = head[:idx]
	}
	return strings.TrimSpace(head)
}

// enumExample instantiates the enum with its first variant, then matches
// over every variant in declared order with a placeholder handler per arm.
func enumExample(name string, variants []variant, ph *placeholders) []string {
	lines := []string{
		"```",
		fmt.Sprintf("use %s::%s;", ph.reserve("crate"), name),
		"",
		fmt.Sprintf("let value = %s::%s;", name, variants[0].instantiationHead()),
		"",
		"match value {",
	}
	for _, v := range variants {
		lines = append(lines,
			fmt.Sprintf("    %s => %s,", v.matchArm(name), ph.reserve("todo!()")))
	}
	return append(lines, "}", "```")
}
