package pixel

// Matrix is the addressable 2D surface over an LED strip snaking through the
// grid. Odd rows run backwards (serpentine wiring); the driver only ever
// sees a flat strip-ordered frame with master brightness already applied.
type Matrix struct {
	width      int
	height     int
	brightness int
	buf        []RGB
	frame      []RGB
	drv        Driver
}

func NewMatrix(width, height int, drv Driver) *Matrix {
	return &Matrix{
		width:      width,
		height:     height,
		brightness: 255,
		buf:        make([]RGB, width*height),
		frame:      make([]RGB, width*height),
		drv:        drv,
	}
}

func (m *Matrix) Width() int  { return m.width }
func (m *Matrix) Height() int { return m.height }

func (m *Matrix) Brightness() int { return m.brightness }

// SetBrightness sets the master brightness scale, clamped to [0,255]. It is
// applied at flush time and never stored into the buffer.
func (m *Matrix) SetBrightness(b int) {
	if b < 0 {
		b = 0
	}
	if b > 255 {
		b = 255
	}
	m.brightness = b
}

// Set writes one cell. Out-of-range coordinates are ignored so callers can
// draw shapes that hang off the edge.
func (m *Matrix) Set(x, y int, c RGB) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.buf[y*m.width+x] = c
}

// At reads back one cell of the unflushed buffer.
func (m *Matrix) At(x, y int) RGB {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return RGB{}
	}
	return m.buf[y*m.width+x]
}

func (m *Matrix) Clear() {
	for i := range m.buf {
		m.buf[i] = RGB{}
	}
}

// Flush maps the buffer to physical strip order, applies brightness, and
// hands the frame to the driver.
func (m *Matrix) Flush() error {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := y*m.width + x
			if y%2 == 1 {
				i = y*m.width + (m.width - 1 - x)
			}
			m.frame[i] = Scale(m.buf[y*m.width+x], m.brightness)
		}
	}
	return m.drv.Write(m.frame)
}
