package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tashus/beam/pixel"
)

func f64p(v float64) *float64 { return &v }
func intp(v int) *int         { return &v }
func strp(v string) *string   { return &v }

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	snap := cfg.Snapshot()
	assert.Equal(t, 0.05, snap.Delay)
	assert.Equal(t, 255, snap.Brightness)
	assert.Equal(t, "rainbow", snap.Animation)
	assert.Equal(t, []pixel.RGB{pixel.White}, snap.Colors)
}

func TestApplyDelay(t *testing.T) {
	cases := []struct {
		delay    float64
		accepted bool
	}{
		{0.0001, true},
		{0.5, true},
		{10, true},
		{0, false},
		{0.00009, false},
		{10.5, false},
		{-1, false},
	}
	for _, tc := range cases {
		cfg := NewConfig()
		cfg.Apply(Update{Delay: f64p(tc.delay)})
		if tc.accepted {
			assert.Equal(t, tc.delay, cfg.Snapshot().Delay, "delay %v should be accepted", tc.delay)
		} else {
			assert.Equal(t, 0.05, cfg.Snapshot().Delay, "delay %v should be rejected", tc.delay)
		}
	}
}

func TestApplyBrightness(t *testing.T) {
	cases := []struct {
		brightness int
		accepted   bool
	}{
		{0, true},
		{128, true},
		{255, true},
		{-1, false},
		{256, false},
	}
	for _, tc := range cases {
		cfg := NewConfig()
		cfg.Apply(Update{Brightness: intp(tc.brightness)})
		if tc.accepted {
			assert.Equal(t, tc.brightness, cfg.Brightness(), "brightness %d should be accepted", tc.brightness)
		} else {
			assert.Equal(t, 255, cfg.Brightness(), "brightness %d should be rejected", tc.brightness)
		}
	}
}

func TestApplyAnimation(t *testing.T) {
	cfg := NewConfig()
	cfg.Apply(Update{Animation: strp("light")})
	assert.Equal(t, "light", cfg.Animation())

	cfg.Apply(Update{Animation: strp("bogus")})
	assert.Equal(t, "light", cfg.Animation())

	for _, name := range Names {
		cfg.Apply(Update{Animation: strp(name)})
		assert.Equal(t, name, cfg.Animation())
	}
}

func TestApplyColors(t *testing.T) {
	cfg := NewConfig()
	cfg.Apply(Update{Colors: []string{"#ff0000", "#00ff00"}})
	assert.Equal(t, []pixel.RGB{{R: 255}, {G: 255}}, cfg.Palette())

	// one bad entry rejects the whole list
	cfg.Apply(Update{Colors: []string{"#0000ff", "notacolor"}})
	assert.Equal(t, []pixel.RGB{{R: 255}, {G: 255}}, cfg.Palette())

	// absent list leaves the palette alone
	cfg.Apply(Update{})
	assert.Equal(t, []pixel.RGB{{R: 255}, {G: 255}}, cfg.Palette())
}

func TestApplyPartialSuccess(t *testing.T) {
	cfg := NewConfig()
	cfg.Apply(Update{
		Delay:      f64p(99), // invalid
		Brightness: intp(10),
		Animation:  strp("strip"),
		Colors:     []string{"#123456"},
	})
	snap := cfg.Snapshot()
	assert.Equal(t, 0.05, snap.Delay)
	assert.Equal(t, 10, snap.Brightness)
	assert.Equal(t, "strip", snap.Animation)
	assert.Equal(t, []pixel.RGB{{R: 0x12, G: 0x34, B: 0x56}}, snap.Colors)
}
