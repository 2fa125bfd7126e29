package keycode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringAndParseRoundTrip(t *testing.T) {
	for code, name := range names {
		got, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, code, got)
		assert.Equal(t, name, code.String())
	}
}

func TestDigitsSerializeBare(t *testing.T) {
	cases := map[Code]string{
		K0: "0", K1: "1", K2: "2", K3: "3", K4: "4",
		K5: "5", K6: "6", K7: "7", K8: "8", K9: "9",
	}
	for code, want := range cases {
		assert.Equal(t, want, code.String())
		got, err := Parse(want)
		require.NoError(t, err)
		assert.Equal(t, code, got)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("NOT_A_KEY")
	assert.Error(t, err)
}

func TestMarshalUnmarshalJSON(t *testing.T) {
	data, err := A.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"A"`, string(data))

	var c Code
	require.NoError(t, c.UnmarshalJSON([]byte(`"LEFTSHIFT"`)))
	assert.Equal(t, LEFTSHIFT, c)
}

func TestIsModifierAndActionKey(t *testing.T) {
	assert.True(t, IsModifier(LEFTSHIFT))
	assert.True(t, IsModifier(RIGHTMETA))
	assert.False(t, IsModifier(A))
	assert.True(t, IsActionKey(A))
	assert.False(t, IsActionKey(LEFTCTRL))
}
