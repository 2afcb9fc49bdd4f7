// Package generator turns one Rust item declaration into a doc-comment
// template with numbered, editable placeholder slots. Analyzers exist for
// functions, structs and enums; every failure mode collapses to "no result"
// rather than an error, leaving the caller to decide what to show.
package generator

import (
	"rsdoc/internal/item"
	"rsdoc/internal/scanner"
)

// Generate scans the buffer from the cursor line and renders the template
// for the declaration found there. Each call is independent and idempotent;
// ok=false means there is nothing to generate.
func Generate(buf *scanner.Buffer, cursorLine int, opts Options) (string, bool) {
	sig, ok := scanner.Scan(buf, cursorLine)
	if !ok {
		return "", false
	}
	return GenerateFromSignature(sig, opts)
}

// GenerateFromSignature dispatches an already-normalized declaration to the
// analyzer for its kind. Trait and union declarations classify as
// unsupported and produce no result.
func GenerateFromSignature(signature string, opts Options) (string, bool) {
	it := item.Classify(signature)
	switch it.Kind {
	case item.Function:
		return AnalyzeFunction(it.Signature, opts)
	case item.Struct:
		return AnalyzeStruct(it.Signature, opts)
	case item.Enum:
		return AnalyzeEnum(it.Signature, opts)
	default:
		return "", false
	}
}
