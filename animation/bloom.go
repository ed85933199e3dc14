package animation

import (
	"math"
	"math/rand"

	"github.com/Tashus/beam/pixel"
)

// Bloom sweeps hue rings out of the grid center. Adapted from the Maniacal
// Labs matrix animations. The distance field is computed once at
// construction and only the sweep intensity moves per frame.
type Bloom struct {
	m     *pixel.Matrix
	field [][]int
	dir   bool
	step  int
}

func NewBloom(_ *Config, m *pixel.Matrix, _ *rand.Rand) Pattern {
	return newBloom(m, true)
}

func newBloom(m *pixel.Matrix, dir bool) *Bloom {
	return &Bloom{m: m, dir: dir, field: genField(m.Width(), m.Height())}
}

// genField precomputes each cell's radial distance from the grid center.
func genField(w, h int) [][]int {
	cx := float64(w-1) / 2.0
	cy := float64(h-1) / 2.0
	field := make([][]int, h)
	for y := range field {
		field[y] = make([]int, w)
		for x := range field[y] {
			dx := float64(x) - cx
			dy := float64(y) - cy
			field[y][x] = int(math.Sqrt(dx*dx + dy*dy))
		}
	}
	return field
}

func (b *Bloom) Name() string { return "bloom" }
func (b *Bloom) Amount() int  { return 8 }

func (b *Bloom) Step(amount int) {
	s := b.step
	if b.dir {
		s = 255 - b.step
	}
	for y := 0; y < b.m.Height(); y++ {
		for x := 0; x < b.m.Width(); x++ {
			b.m.Set(x, y, pixel.HueByDistance(b.field[y][x], b.m.Height(), s))
		}
	}
	b.step += amount
	if b.step >= 255 {
		b.step = 0
	}
}
