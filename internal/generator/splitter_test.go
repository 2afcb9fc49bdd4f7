package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTopLevel(t *testing.T) {
	t.Run("variant list", func(t *testing.T) {
		parts := splitTopLevel("A, B(u8), C { x: u32 }")
		assert.Equal(t, []string{"A", "B(u8)", "C { x: u32 }"}, parts)
	})

	t.Run("nested commas stay inside", func(t *testing.T) {
		parts := splitTopLevel("Pair(i32, i32), Rect { w: f64, h: f64 }, Unit")
		assert.Equal(t, []string{"Pair(i32, i32)", "Rect { w: f64, h: f64 }", "Unit"}, parts)
	})

	t.Run("trailing comma and blanks dropped", func(t *testing.T) {
		parts := splitTopLevel(" a: i32 , b: i32 , ")
		assert.Equal(t, []string{"a: i32", "b: i32"}, parts)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, splitTopLevel("   "))
	})

	t.Run("generic commas are a known limitation", func(t *testing.T) {
		// Angle brackets are not tracked, so this splits inside the type.
		parts := splitTopLevel("map: HashMap<K, V>")
		assert.Len(t, parts, 2)
	})
}

func TestBalancedSlice(t *testing.T) {
	body, end, ok := balancedSlice("fn f(a: (u8, u8), b: i32) -> i32", 4, '(', ')')
	assert.True(t, ok)
	assert.Equal(t, "a: (u8, u8), b: i32", body)
	assert.Equal(t, byte(' '), "fn f(a: (u8, u8), b: i32) -> i32"[end])

	_, _, ok = balancedSlice("fn f(unclosed", 0, '(', ')')
	assert.False(t, ok)
}
