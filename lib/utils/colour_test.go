package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColourValidate(t *testing.T) {
	assert.True(t, ColourValidate("#b28099ff"))
	assert.True(t, ColourValidate("#00000000"))
	assert.True(t, ColourValidate("#FFFFFFFF"))

	assert.False(t, ColourValidate("b28099ff"), "missing leading #")
	assert.False(t, ColourValidate("#b28099"), "6-digit RGB is not enough")
	assert.False(t, ColourValidate("#b28099ffff"), "too many digits")
	assert.False(t, ColourValidate("#gggggggg"))
	assert.False(t, ColourValidate(""))
}

func TestColourParse(t *testing.T) {
	c := ColourParse("#ff000080")
	assert.InDelta(t, 1.0, c.R, 1e-6)
	assert.InDelta(t, 0.0, c.G, 1e-6)
	assert.InDelta(t, 0.0, c.B, 1e-6)
	assert.InDelta(t, float64(0x80)/255, c.A, 1e-6)
}

func TestColourParseZeroOnGarbage(t *testing.T) {
	assert.Equal(t, Colour{}, ColourParse("not a colour"))
	assert.Equal(t, Colour{}, ColourParse("#ff0000"), "truncated input must not fill the leading channels")
	assert.Equal(t, Colour{}, ColourParse("#b28099ffff"))
}

func TestColourVec4RoundTrip(t *testing.T) {
	c := ColourParse("#336699cc")
	assert.Equal(t, c, FromVec4(c.Vec4()))
}
