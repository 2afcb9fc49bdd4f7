package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeStruct_UnitStructsRejected(t *testing.T) {
	for _, sig := range []string{
		"struct Marker;",
		"pub struct Marker;",
		"struct Empty {}",
		"pub(crate) struct Empty { }",
		"struct Tagged<T>;",
	} {
		_, ok := AnalyzeStruct(sig, DefaultOptions())
		assert.False(t, ok, "unit struct must yield no template: %q", sig)
	}
}

func TestAnalyzeStruct_TuplePairScenario(t *testing.T) {
	out, ok := AnalyzeStruct("struct Pair(i32, f64);", DefaultOptions())
	require.True(t, ok)

	assert.Contains(t, out, "# Fields")
	assert.Contains(t, out, "`field_0` (i32)")
	assert.Contains(t, out, "`field_1` (f64)")
	assert.Contains(t, out, "# Examples")
	assert.Contains(t, out, "let pair = Pair(value, value);")
}

func TestAnalyzeStruct_FieldStyle(t *testing.T) {
	out, ok := AnalyzeStruct("pub struct Point { pub x: i32, pub y: i32, }", DefaultOptions())
	require.True(t, ok)

	assert.Contains(t, out, "`x` (i32)")
	assert.Contains(t, out, "`y` (i32)")
	assert.NotContains(t, out, "pub x", "per-field visibility must be stripped")

	assert.Contains(t, out, "let point = Point {")
	assert.Contains(t, out, "    x: value,")
	assert.Contains(t, out, "    y: value,")
	assert.Contains(t, out, "};")

	// field order preserved
	assert.Less(t, strings.Index(out, "`x`"), strings.Index(out, "`y`"))
}

func TestAnalyzeStruct_ExampleGatingApplies(t *testing.T) {
	// Examples for structs obey the same gating as functions and enums.
	t.Run("disabled entirely", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IncludeExamples = false
		out, ok := AnalyzeStruct("pub struct Point { x: i32 }", opts)
		require.True(t, ok)
		assert.NotContains(t, out, "# Examples")
	})

	t.Run("public-only hides private", func(t *testing.T) {
		opts := DefaultOptions()
		opts.ExamplesOnlyForPublicOrExtern = true
		out, ok := AnalyzeStruct("struct Point { x: i32 }", opts)
		require.True(t, ok)
		assert.NotContains(t, out, "# Examples")
	})

	t.Run("public-only shows pub", func(t *testing.T) {
		opts := DefaultOptions()
		opts.ExamplesOnlyForPublicOrExtern = true
		out, ok := AnalyzeStruct("pub struct Point { x: i32 }", opts)
		require.True(t, ok)
		assert.Contains(t, out, "# Examples")
	})
}

func TestAnalyzeStruct_NotAStruct(t *testing.T) {
	_, ok := AnalyzeStruct("fn add(a: i32) -> i32 {", DefaultOptions())
	assert.False(t, ok)

	_, ok = AnalyzeStruct("struct Broken(", DefaultOptions())
	assert.False(t, ok)
}

func TestAnalyzeStruct_NestedTypesSurviveSplitting(t *testing.T) {
	out, ok := AnalyzeStruct("struct Wrap { inner: (u8, u8), label: String }", DefaultOptions())
	require.True(t, ok)
	assert.Contains(t, out, "`inner` ((u8, u8))")
	assert.Contains(t, out, "`label` (String)")
}
