package layout

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillaja/totalmapper/internal/defaultlayouts"
	"github.com/quillaja/totalmapper/internal/keycode"
)

// compactEquivalent strips insignificant whitespace from raw JSON text so
// two differently-formatted documents can be compared for equality. It
// operates on the text directly rather than round-tripping through a Go
// map, which would alphabetize keys and defeat the comparison.
func compactEquivalent(t *testing.T, data []byte) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.Compact(&buf, data))
	return buf.String()
}

func checkRoundTrip(t *testing.T, name, original string) {
	t.Helper()
	want := compactEquivalent(t, []byte(original))

	l, err := ParseLayout([]byte(original))
	require.NoError(t, err, "parsing %s", name)

	formatted := FormatLayout(l)
	got := compactEquivalent(t, formatted)

	assert.Equal(t, want, got, "round-trip mismatch for %s", name)
}

func TestDefaultLayoutsRoundTrip(t *testing.T) {
	for _, name := range defaultlayouts.List() {
		raw, err := defaultlayouts.Load(name)
		require.NoError(t, err)
		checkRoundTrip(t, name, raw)
	}
}

func TestDefaultLayoutsCompile(t *testing.T) {
	for _, name := range defaultlayouts.List() {
		raw, err := defaultlayouts.Load(name)
		require.NoError(t, err)

		l, err := ParseLayout([]byte(raw))
		require.NoError(t, err, name)

		compiled, err := Compile(l)
		require.NoError(t, err, "compiling %s", name)
		assert.NotEmpty(t, compiled.Mappings, name)

		for _, m := range compiled.Mappings {
			assert.NotEmpty(t, m.From, "%s: rule has empty from", name)
			assertNoDuplicates(t, name, m.From)
			assertNoDuplicates(t, name, m.To)
			for k := range m.Absorbing {
				assert.Contains(t, m.From, k, "%s: absorbing key not in from", name)
			}
		}
	}
}

func assertNoDuplicates(t *testing.T, name string, codes []keycode.Code) {
	t.Helper()
	seen := make(map[keycode.Code]bool, len(codes))
	for _, c := range codes {
		assert.False(t, seen[c], "%s: duplicate key %s", name, c)
		seen[c] = true
	}
}

func TestCompileAliasCapslockEmitsEmptyRule(t *testing.T) {
	l, err := ParseLayout([]byte(`{"mappings":[
		{"from":"CAPSLOCK","to":"@symbol"},
		{"from":["@symbol","A"],"to":"B"}
	]}`))
	require.NoError(t, err)

	compiled, err := Compile(l)
	require.NoError(t, err)

	var sawBareCapslock, sawComposite bool
	for _, m := range compiled.Mappings {
		if len(m.From) == 1 && m.From[0] == keycode.CAPSLOCK {
			sawBareCapslock = true
			assert.Empty(t, m.To)
		}
		if len(m.From) == 2 && m.From[0] == keycode.CAPSLOCK && m.From[1] == keycode.A {
			sawComposite = true
			assert.Equal(t, []keycode.Code{keycode.B}, m.To)
		}
	}
	assert.True(t, sawBareCapslock, "CAPSLOCK is not a conventional modifier, so its alias definition emits a bare rule with empty to")
	assert.True(t, sawComposite)
}

func TestCompileRowMappingSkipsSpaces(t *testing.T) {
	l, err := ParseLayout([]byte(`{"mappings":[
		{"from":{"row":"A"},"to":{"letters":"a e"}}
	]}`))
	require.NoError(t, err)

	compiled, err := Compile(l)
	require.NoError(t, err)
	assert.Len(t, compiled.Mappings, 2)

	row := KeysOf(RowA)
	found := map[keycode.Code][]keycode.Code{}
	for _, m := range compiled.Mappings {
		found[m.From[len(m.From)-1]] = m.To
	}
	assert.Equal(t, []keycode.Code{keycode.A}, found[row[0]])
	assert.Equal(t, []keycode.Code{keycode.E}, found[row[2]])
	_, hasCol1 := found[row[1]]
	assert.False(t, hasCol1, "space column should be skipped")
}

func TestCompileRowLongerThanRowFails(t *testing.T) {
	l, err := ParseLayout([]byte(`{"mappings":[
		{"from":{"row":"Z"},"to":{"letters":"0123456789AB"}}
	]}`))
	require.NoError(t, err)

	_, err = Compile(l)
	assert.Error(t, err)
}

func TestCompileRepeatOnlyOverwritesExisting(t *testing.T) {
	l, err := ParseLayout([]byte(`{"mappings":[
		{"from":"J","to":"LEFT"},
		{"from":"J","repeat":"Disabled"}
	]}`))
	require.NoError(t, err)

	compiled, err := Compile(l)
	require.NoError(t, err)
	require.Len(t, compiled.Mappings, 1)
	assert.Equal(t, CompiledRepeatDisabled, compiled.Mappings[0].Repeat.Kind)
	assert.Equal(t, []keycode.Code{keycode.LEFT}, compiled.Mappings[0].To)
}

func TestCompileRepeatOnlySynthesizesIdentity(t *testing.T) {
	l, err := ParseLayout([]byte(`{"mappings":[
		{"from":"J","repeat":{"Special":{"keys":"F21","delay_ms":180,"interval_ms":30}}}
	]}`))
	require.NoError(t, err)

	compiled, err := Compile(l)
	require.NoError(t, err)
	require.Len(t, compiled.Mappings, 1)
	m := compiled.Mappings[0]
	assert.Equal(t, []keycode.Code{keycode.J}, m.From)
	assert.Equal(t, []keycode.Code{keycode.J}, m.To)
	assert.Equal(t, CompiledRepeatSpecial, m.Repeat.Kind)
	assert.Equal(t, []keycode.Code{keycode.F21}, m.Repeat.Keys)
}

func TestCompileUndefinedAliasFails(t *testing.T) {
	l, err := ParseLayout([]byte(`{"mappings":[
		{"from":["@nope","A"],"to":"B"}
	]}`))
	require.NoError(t, err)

	_, err = Compile(l)
	assert.Error(t, err)
}
