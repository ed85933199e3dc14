package animation

import (
	"log"
	"math/rand"
	"time"

	"github.com/launchdarkly/go-metrics"

	"github.com/Tashus/beam/pixel"
)

type stepResult int

const (
	stepContinue stepResult = iota
	stepCancelled
	stepFaulted
)

// Scheduler owns the matrix and runs the configured pattern frame by frame,
// reselecting whenever the running pattern is cancelled or faults.
type Scheduler struct {
	cfg    *Config
	m      *pixel.Matrix
	rnd    *rand.Rand
	frames metrics.Timer
}

func NewScheduler(cfg *Config, m *pixel.Matrix, rnd *rand.Rand) *Scheduler {
	return &Scheduler{
		cfg:    cfg,
		m:      m,
		rnd:    rnd,
		frames: metrics.GetOrRegisterTimer("frames", metrics.DefaultRegistry),
	}
}

// Run loops select-run-reselect until quitC closes. The per-frame delay is
// the only point where the loop sleeps, so configuration changes land on the
// next frame boundary.
func (s *Scheduler) Run(quitC <-chan struct{}) {
	frameCount := 0
	checkpoint := time.Now()
	for {
		select {
		case <-quitC:
			return
		default:
		}

		p := s.selectPattern()
		log.Printf("starting %s sequence", p.Name())

	run:
		for {
			s.m.SetBrightness(s.cfg.Brightness())

			start := time.Now()
			switch s.frame(p) {
			case stepCancelled:
				log.Printf("changing from %s to %s", p.Name(), s.cfg.Animation())
				break run
			case stepFaulted:
				break run
			}
			if err := s.m.Flush(); err != nil {
				log.Printf("flush failed: %v", err)
			}
			s.frames.UpdateSince(start)

			frameCount++
			if frameCount%1000 == 0 {
				log.Printf("avg FPS for past 1000 frames: %v", 1000.0/time.Since(checkpoint).Seconds())
				checkpoint = time.Now()
			}

			select {
			case <-time.After(s.cfg.Delay()):
			case <-quitC:
				return
			}
		}
	}
}

// frame runs one step of p. The cancellation check happens before any work:
// if the configured pattern no longer matches p, the frame is skipped
// entirely. A panic inside the step becomes a faulted result so one broken
// pattern can't take the process down.
func (s *Scheduler) frame(p Pattern) (res stepResult) {
	if s.cfg.Animation() != p.Name() {
		return stepCancelled
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("%s pattern faulted: %v", p.Name(), r)
			res = stepFaulted
		}
	}()
	p.Step(p.Amount())
	return stepContinue
}

// selectPattern resolves the configured pattern name, falling back to a
// uniformly random choice if the stored name doesn't resolve.
func (s *Scheduler) selectPattern() Pattern {
	ctor, err := Resolve(s.cfg.Animation())
	if err != nil {
		ctor, _ = Resolve(Names[s.rnd.Intn(len(Names))])
	}
	return ctor(s.cfg, s.m, s.rnd)
}
