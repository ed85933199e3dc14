package animation

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/Tashus/beam/pixel"
)

const (
	minDelay = 0.0001
	maxDelay = 10.0
)

// Config is the live animation state shared between the control endpoint's
// handler goroutines and the scheduler goroutine. Each field updates
// independently, last write wins; the palette is swapped as a whole so
// readers never see it half-replaced, and it is never empty.
type Config struct {
	delay      atomic.Uint64 // float64 bits, seconds
	brightness atomic.Int32
	pattern    atomic.Value // string
	palette    atomic.Pointer[[]pixel.RGB]
}

// Update is one decoded control request. Pointer fields distinguish absent
// from zero (brightness 0 is a legitimate update).
type Update struct {
	Delay      *float64 `json:"delay"`
	Brightness *int     `json:"brightness"`
	Animation  *string  `json:"animation"`
	Colors     []string `json:"colors"`
}

// Snapshot is the post-update state returned by the control endpoint.
type Snapshot struct {
	Brightness int         `json:"brightness"`
	Delay      float64     `json:"delay"`
	Animation  string      `json:"animation"`
	Colors     []pixel.RGB `json:"colors"`
}

func NewConfig() *Config {
	c := &Config{}
	c.setDelay(0.05)
	c.brightness.Store(255)
	c.pattern.Store("rainbow")
	c.setPalette([]pixel.RGB{pixel.White})
	return c
}

func (c *Config) setDelay(d float64) {
	c.delay.Store(math.Float64bits(d))
}

func (c *Config) setPalette(p []pixel.RGB) {
	c.palette.Store(&p)
}

func (c *Config) Delay() time.Duration {
	s := math.Float64frombits(c.delay.Load())
	return time.Duration(s * float64(time.Second))
}

func (c *Config) Brightness() int {
	return int(c.brightness.Load())
}

func (c *Config) Animation() string {
	return c.pattern.Load().(string)
}

func (c *Config) Palette() []pixel.RGB {
	return *c.palette.Load()
}

// Apply validates and applies each field of u on its own: a bad field is
// logged and dropped without touching the others. The color list is the one
// exception, it is accepted or rejected whole.
func (c *Config) Apply(u Update) {
	if u.Delay != nil {
		if d := *u.Delay; d >= minDelay && d <= maxDelay {
			c.setDelay(d)
		} else {
			log.Printf("delay out of range: %v", d)
		}
	}
	if u.Brightness != nil {
		if b := *u.Brightness; b >= 0 && b <= 255 {
			c.brightness.Store(int32(b))
		} else {
			log.Printf("brightness out of range: %d", b)
		}
	}
	if u.Animation != nil {
		if _, err := Resolve(*u.Animation); err == nil {
			c.pattern.Store(*u.Animation)
		} else {
			log.Printf("unknown animation: %s", *u.Animation)
		}
	}
	if len(u.Colors) > 0 {
		palette := make([]pixel.RGB, 0, len(u.Colors))
		ok := true
		for _, s := range u.Colors {
			rgb, err := pixel.ParseHex(s)
			if err != nil {
				log.Printf("invalid color passed: %q", s)
				ok = false
				break
			}
			palette = append(palette, rgb)
		}
		if ok {
			c.setPalette(palette)
		}
	}
}

// Snapshot reads each field on its own. There is no cross-field consistency
// guarantee, matching the per-field update semantics.
func (c *Config) Snapshot() Snapshot {
	return Snapshot{
		Brightness: c.Brightness(),
		Delay:      c.Delay().Seconds(),
		Animation:  c.Animation(),
		Colors:     c.Palette(),
	}
}
