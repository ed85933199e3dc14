package animation

import (
	"errors"
	"math/rand"

	"github.com/Tashus/beam/pixel"
)

var ErrUnknownPattern = errors.New("unknown animation pattern")

// Pattern computes one frame per Step call onto the matrix it was built
// around. Amount is the counter increment the scheduler passes per frame.
type Pattern interface {
	Name() string
	Amount() int
	Step(amount int)
}

// Constructor builds a fresh pattern instance. Randomness comes in through
// rnd so tests can seed it and assert exact output.
type Constructor func(cfg *Config, m *pixel.Matrix, rnd *rand.Rand) Pattern

var constructors = map[string]Constructor{
	"rainbow": NewRainbow,
	"light":   NewLight,
	"bloom":   NewBloom,
	"strip":   NewStrip,
	"rain":    NewMatrixRain,
}

// Names lists every known pattern in a stable order.
var Names = []string{"rainbow", "light", "bloom", "strip", "rain"}

// Resolve returns the constructor for name, or ErrUnknownPattern. The config
// store already filters unknown names, but the scheduler doesn't rely on it.
func Resolve(name string) (Constructor, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, ErrUnknownPattern
	}
	return ctor, nil
}
