package pixel

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is one pixel's color. It marshals as a [r,g,b] triple, which is the
// shape the control endpoint has always returned.
type RGB struct {
	R, G, B uint8
}

func (c RGB) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d,%d]", c.R, c.G, c.B)), nil
}

var White = RGB{255, 255, 255}

// ParseHex parses a "#rrggbb" hex string into an RGB.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// Wheel maps a position on a 384-step color wheel to a color. Three 128-step
// phases: red fades to green, green to blue, blue back to red. Positions
// outside [0,384) are normalized.
func Wheel(pos int) RGB {
	pos %= 384
	if pos < 0 {
		pos += 384
	}
	switch {
	case pos < 128:
		return RGB{uint8(127 - pos), uint8(pos), 0}
	case pos < 256:
		return RGB{0, uint8(255 - pos), uint8(pos - 128)}
	default:
		return RGB{uint8(pos - 256), 0, uint8(383 - pos)}
	}
}

// HueByDistance turns a precomputed field distance plus a sweep intensity
// into a color on the hue circle. length normalizes the distance to the
// grid dimension it was computed over.
func HueByDistance(dist, length, intensity int) RGB {
	if length <= 0 {
		length = 1
	}
	hue := (dist*255/length + intensity) % 255
	if hue < 0 {
		hue += 255
	}
	c := colorful.Hsv(float64(hue)/255.0*360.0, 1.0, 1.0)
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

// Scale scales each channel of c linearly by level/255. level is clamped
// to [0,255].
func Scale(c RGB, level int) RGB {
	if level < 0 {
		level = 0
	}
	if level > 255 {
		level = 255
	}
	return RGB{
		uint8(int(c.R) * level / 255),
		uint8(int(c.G) * level / 255),
		uint8(int(c.B) * level / 255),
	}
}
