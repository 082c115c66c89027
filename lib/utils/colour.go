package utils

import (
	"fmt"
	"regexp"

	"github.com/go-gl/mathgl/mgl32"
)

// Colour is a normalised RGBA colour, directly usable as gl.ClearColor
// arguments.
type Colour struct {
	R, G, B, A float32
}

var colourRe = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

func ColourValidate(c string) bool {
	return colourRe.MatchString(c)
}

// ColourParse parses an 8-digit RGBA hex colour such as "#b28099ff".
// Strings that fail ColourValidate parse as the zero colour.
func ColourParse(s string) Colour {
	if !ColourValidate(s) {
		return Colour{}
	}
	var r, g, b, a uint8
	fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	return Colour{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

func (c Colour) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// FromVec4 is the inverse of Vec4, for callers that animate colours with
// mathgl and hand the result back to the GL clear state.
func FromVec4(v mgl32.Vec4) Colour {
	return Colour{R: v.X(), G: v.Y(), B: v.Z(), A: v.W()}
}
