package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_SkipsAttributesBeforeItem(t *testing.T) {
	buf := NewBuffer([]string{
		"///",
		"#[inline]",
		"#[cfg(test)]",
		"fn hello() -> String {",
	})

	sig, ok := Scan(buf, 0)
	require.True(t, ok)
	assert.Equal(t, "fn hello() -> String {", sig)
}

func TestScan_SkipsMultiLineAttribute(t *testing.T) {
	buf := NewBuffer([]string{
		"///",
		"#[cfg_attr(",
		"    feature = \"serde\",",
		"    derive(Serialize),",
		")]",
		"pub fn run() {",
	})

	sig, ok := Scan(buf, 0)
	require.True(t, ok)
	assert.Equal(t, "pub fn run() {", sig)
}

func TestScan_JoinsMultiLineFunction(t *testing.T) {
	buf := NewBuffer([]string{
		"///",
		"",
		"pub async fn fetch(",
		"    url: String,",
		"    retries: u8,",
		") -> Result<Body, Error> {",
	})

	sig, ok := Scan(buf, 0)
	require.True(t, ok)
	assert.Equal(t, "pub async fn fetch( url: String, retries: u8, ) -> Result<Body, Error> {", sig)
}

func TestScan_CapturesFullStructBody(t *testing.T) {
	buf := NewBuffer([]string{
		"///",
		"pub struct Point {",
		"    pub x: i32, // horizontal",
		"    pub y: i32,",
		"}",
	})

	sig, ok := Scan(buf, 0)
	require.True(t, ok)
	assert.Equal(t, "pub struct Point { pub x: i32, pub y: i32, }", sig)
}

func TestScan_CapturesFullEnumBody(t *testing.T) {
	buf := NewBuffer([]string{
		"///",
		"enum Shape {",
		"    Circle(f64),",
		"    Rect { w: f64, h: f64 },",
		"}",
	})

	sig, ok := Scan(buf, 0)
	require.True(t, ok)
	assert.Equal(t, "enum Shape { Circle(f64), Rect { w: f64, h: f64 }, }", sig)
}

func TestScan_StopsFunctionAtSemicolon(t *testing.T) {
	buf := NewBuffer([]string{
		"///",
		"fn prototype(x: u8) -> u8;",
	})

	sig, ok := Scan(buf, 0)
	require.True(t, ok)
	assert.Equal(t, "fn prototype(x: u8) -> u8;", sig)
}

func TestScan_FailsInsideBody(t *testing.T) {
	t.Run("bare closing brace", func(t *testing.T) {
		buf := NewBuffer([]string{"///", "}", "fn later() {"})
		_, ok := Scan(buf, 0)
		assert.False(t, ok, "must not skip ahead to a later item")
	})

	t.Run("comment line", func(t *testing.T) {
		buf := NewBuffer([]string{"///", "// local note", "fn later() {"})
		_, ok := Scan(buf, 0)
		assert.False(t, ok)
	})

	t.Run("statement line", func(t *testing.T) {
		buf := NewBuffer([]string{"///", "let x = 5;"})
		_, ok := Scan(buf, 0)
		assert.False(t, ok)
	})
}

func TestScan_BlankLinesAreSkippedNotFatal(t *testing.T) {
	buf := NewBuffer([]string{
		"///",
		"",
		"  ",
		"struct Pair(i32, f64);",
	})

	sig, ok := Scan(buf, 0)
	require.True(t, ok)
	assert.Equal(t, "struct Pair(i32, f64);", sig)
}

func TestScan_NothingAfterCursor(t *testing.T) {
	buf := NewBuffer([]string{"///", "", ""})
	_, ok := Scan(buf, 0)
	assert.False(t, ok)
}

func TestScan_CursorAtBufferEnd(t *testing.T) {
	buf := NewBuffer([]string{"fn before() {}"})
	_, ok := Scan(buf, 0)
	assert.False(t, ok)
}

func TestScan_StripsTrailingComments(t *testing.T) {
	buf := NewBuffer([]string{
		"///",
		"fn compute() -> i32 { // fast path",
	})

	sig, ok := Scan(buf, 0)
	require.True(t, ok)
	assert.Equal(t, "fn compute() -> i32 {", sig)
}

func TestScan_CollectsTraitForClassifierRejection(t *testing.T) {
	buf := NewBuffer([]string{
		"///",
		"pub trait Render {",
		"    fn draw(&self);",
		"}",
	})

	sig, ok := Scan(buf, 0)
	require.True(t, ok)
	assert.Contains(t, sig, "trait Render")
}

func TestScan_VisibilityVariantsRecognized(t *testing.T) {
	for _, line := range []string{
		"pub(crate) fn scoped() {",
		"pub(super) struct Inner;",
		"pub(in crate::api) fn deep() {",
		"const fn frozen() -> u8 {",
		"unsafe fn raw() {",
		"extern \"C\" fn callback() {",
	} {
		buf := NewBuffer([]string{"///", line})
		_, ok := Scan(buf, 0)
		assert.True(t, ok, "should recognize %q", line)
	}
}

func TestNewBufferFromString(t *testing.T) {
	buf := NewBufferFromString("a\r\nb\nc")
	require.Equal(t, 3, buf.Len())
	assert.Equal(t, "b", buf.Line(1))
}
