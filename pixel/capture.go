package pixel

import "sync"

// CaptureDriver keeps flushed frames in memory so tests can assert on what
// actually reached the wire. Safe to read while a scheduler is flushing.
type CaptureDriver struct {
	mu     sync.Mutex
	frames [][]RGB
}

func (d *CaptureDriver) Write(frame []RGB) error {
	cp := make([]RGB, len(frame))
	copy(cp, frame)
	d.mu.Lock()
	d.frames = append(d.frames, cp)
	d.mu.Unlock()
	return nil
}

func (d *CaptureDriver) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.frames)
}

// Last returns the most recently flushed frame, or nil if nothing has been
// flushed yet.
func (d *CaptureDriver) Last() []RGB {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.frames) == 0 {
		return nil
	}
	return d.frames[len(d.frames)-1]
}
