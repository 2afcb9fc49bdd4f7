package generator

import (
	"fmt"
	"regexp"
	"strings"
)

// Param is one (name, type) pair from an argument list or a struct body.
// Declaration order is preserved; duplicates pass through as-is.
type Param struct {
	Name string
	Type string
}

// functionModifiers are the flags that change which sections get emitted.
type functionModifiers struct {
	async  bool
	unsafe bool
	extern bool
	abi    string
}

var (
	// visibilityRe matches a leading visibility clause: pub, pub(crate),
	// pub(self), pub(super) or pub(in some::path).
	visibilityRe = regexp.MustCompile(
		`^pub(?:\s*\(\s*(?:crate|self|super|in\s+[\w:]+)\s*\))?\s+`)

	// publicOrExternRe decides example gating on the original, unstripped
	// signature: any visibility clause or an extern clause anywhere counts.
	publicOrExternRe = regexp.MustCompile(`\bpub\b|\bextern\b`)

	modifierRe = regexp.MustCompile(
		`^(?:const\s+)?(async\s+)?(unsafe\s+)?(extern\s*(?:"([^"]*)")?\s+)?fn\s`)

	fnHeadRe = regexp.MustCompile(`\bfn\s+([A-Za-z_][A-Za-z0-9_]*)`)

	// resultRe marks a function fallible: an angle-bracket wrapped,
	// non-empty Result return type.
	resultRe = regexp.MustCompile(`\bResult\s*<.+>`)
)

// safetyObligations are the fixed caller-obligation bullets emitted when
// safety details are enabled.
var safetyObligations = []string{
	"* The caller must uphold every invariant this function relies on.",
	"* Pointers and handles passed in must stay valid for the whole call.",
	"* Violating the documented preconditions is undefined behavior.",
}

// AnalyzeFunction decomposes a normalized fn declaration into name,
// modifiers, parameters and return type, and renders its documentation
// template. ok=false means the declaration is not a function this analyzer
// can handle.
func AnalyzeFunction(signature string, opts Options) (string, bool) {
	signature = strings.TrimSpace(signature)
	isPublicOrExtern := publicOrExternRe.MatchString(signature)

	sig := visibilityRe.ReplaceAllString(signature, "")
	mods := matchFunctionModifiers(sig)

	head := fnHeadRe.FindStringSubmatchIndex(sig)
	if head == nil {
		return "", false
	}
	name := sig[head[2]:head[3]]

	args, argsEnd, ok := balancedSlice(sig, head[1], '(', ')')
	if !ok {
		return "", false
	}
	params := parseParams(args)
	returnType := parseReturnType(sig[argsEnd:])
	fallible := returnType != "" && resultRe.MatchString(returnType)

	ph := newPlaceholders()
	lines := []string{descriptionSlot}

	if len(params) > 0 {
		body := make([]string, 0, len(params))
		for _, p := range params {
			body = append(body, paramBullet(p, ph))
		}
		lines = appendSection(lines, "# Arguments", body...)
	}

	if returnType != "" {
		lines = appendSection(lines, "# Returns",
			fmt.Sprintf("`%s` - %s", returnType, ph.reserve("description")))
	}

	if mods.unsafe || mods.extern {
		var body []string
		if opts.IncludeSafetyDetails {
			body = append(body, safetyObligations...)
		}
		if mods.unsafe {
			body = append(body, "* "+ph.reserve(
				"Explain why this function is unsafe and what callers must guarantee."))
		}
		lines = appendSection(lines, "# Safety", body...)
	}

	if fallible {
		lines = appendSection(lines, "# Errors",
			ph.reserve("Describe the conditions under which this function returns an error."))
	}

	if opts.IncludeExamples && (!opts.ExamplesOnlyForPublicOrExtern || isPublicOrExtern) {
		lines = appendSection(lines, "# Examples", functionExample(name, params, mods, ph)...)
	}

	return renderDocBlock(lines), true
}

func matchFunctionModifiers(sig string) functionModifiers {
	m := modifierRe.FindStringSubmatch(sig)
	if m == nil {
		return functionModifiers{}
	}
	return functionModifiers{
		async:  m[1] != "",
		unsafe: m[2] != "",
		extern: m[3] != "",
		abi:    m[4],
	}
}

// parseParams splits an argument list on top-level commas and each entry on
// its first colon. Self receivers carry nothing documentable and are
// skipped. Generic commas inside parameter types mis-split; see splitter.go.
func parseParams(args string) []Param {
	var params []Param
	for _, raw := range splitTopLevel(args) {
		if isReceiver(raw) {
			continue
		}
		name, typ, found := strings.Cut(raw, ":")
		name = strings.TrimSpace(name)
		if name == "self" {
			continue
		}
		if !found {
			params = append(params, Param{Name: name})
			continue
		}
		params = append(params, Param{Name: name, Type: strings.TrimSpace(typ)})
	}
	return params
}

func isReceiver(arg string) bool {
	arg = strings.TrimSpace(arg)
	arg = strings.TrimSpace(strings.TrimPrefix(arg, "&"))
	if strings.HasPrefix(arg, "'") {
		// borrow with a lifetime, e.g. &'a self
		if i := strings.IndexByte(arg, ' '); i >= 0 {
			arg = strings.TrimSpace(arg[i+1:])
		}
	}
	arg = strings.TrimPrefix(arg, "mut ")
	return strings.TrimSpace(arg) == "self"
}

// parseReturnType reads an optional `-> type` clause, dropping the
// declaration terminator the scanner left in place.
func parseReturnType(tail string) string {
	tail = strings.TrimSpace(tail)
	if !strings.HasPrefix(tail, "->") {
		return ""
	}
	rt := strings.TrimSpace(strings.TrimPrefix(tail, "->"))
	for _, term := range []string{"{", ";", "=>"} {
		rt = strings.TrimSpace(strings.TrimSuffix(rt, term))
	}
	return rt
}

func paramBullet(p Param, ph *placeholders) string {
	if p.Type == "" {
		return fmt.Sprintf("* `%s` - %s", p.Name, ph.reserve("description"))
	}
	return fmt.Sprintf("* `%s` (%s) - %s", p.Name, p.Type, ph.reserve("description"))
}

// functionExample renders the example body picked by the async/unsafe
// matrix. Async or unsafe calls cannot run under doctest, so those fences
// are marked no_run.
func functionExample(name string, params []Param, mods functionModifiers, ph *placeholders) []string {
	fence := "```"
	if mods.async || mods.unsafe {
		fence = "```no_run"
	}

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	call := fmt.Sprintf("%s(%s)", name, strings.Join(names, ", "))

	lines := []string{
		fence,
		fmt.Sprintf("use %s::%s;", ph.reserve("crate"), name),
		"",
	}

	switch {
	case mods.async && mods.unsafe:
		lines = append(lines,
			"let result = async {",
			"    // SAFETY: the required invariants are upheld",
			fmt.Sprintf("    unsafe { %s.await }", call),
			"};")
	case mods.async:
		lines = append(lines,
			"let result = async {",
			fmt.Sprintf("    %s.await", call),
			"};")
	case mods.unsafe:
		lines = append(lines,
			"// SAFETY: the required invariants are upheld",
			fmt.Sprintf("let result = unsafe { %s };", call))
	default:
		lines = append(lines, fmt.Sprintf("let result = %s;", call))
	}

	return append(lines, "```")
}
