// Package item classifies a normalized declaration into the closed set of
// kinds the generator understands.
package item

import "regexp"

// Kind enumerates the declaration categories.
type Kind int

const (
	Unsupported Kind = iota
	Function
	Struct
	Enum
)

func (k Kind) String() string {
	switch k {
	case Function:
		return "function"
	case Struct:
		return "struct"
	case Enum:
		return "enum"
	default:
		return "unsupported"
	}
}

// Item pairs a normalized signature with its classified kind. Unsupported
// items keep the unmatched text for diagnostics.
type Item struct {
	Kind      Kind
	Signature string
}

var (
	fnRe     = regexp.MustCompile(`\bfn\s+[A-Za-z_][A-Za-z0-9_]*\s*(?:<[^>]*>)?\s*\(`)
	structRe = regexp.MustCompile(`\bstruct\s+[A-Za-z_][A-Za-z0-9_]*`)
	enumRe   = regexp.MustCompile(`\benum\s+[A-Za-z_][A-Za-z0-9_]*`)

	// trait and union declarations are recognized so they can be rejected
	// up front: a trait body contains fn prototypes that would otherwise
	// misclassify the whole block as a function.
	unsupportedRe = regexp.MustCompile(
		`^(?:pub(?:\s*\([^)]*\))?\s+)?(?:unsafe\s+)?(?:trait|union)\s`)
)

// Classify inspects a normalized declaration and returns which kind it
// represents. First match wins; trait and union are never wired to an
// analyzer and always classify as Unsupported.
func Classify(signature string) Item {
	switch {
	case unsupportedRe.MatchString(signature):
		return Item{Kind: Unsupported, Signature: signature}
	case fnRe.MatchString(signature):
		return Item{Kind: Function, Signature: signature}
	case structRe.MatchString(signature):
		return Item{Kind: Struct, Signature: signature}
	case enumRe.MatchString(signature):
		return Item{Kind: Enum, Signature: signature}
	default:
		return Item{Kind: Unsupported, Signature: signature}
	}
}
