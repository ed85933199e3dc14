package pixel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixSetAndAt(t *testing.T) {
	m := NewMatrix(3, 2, &CaptureDriver{})
	m.Set(1, 1, RGB{R: 9})
	assert.Equal(t, RGB{R: 9}, m.At(1, 1))
	assert.Equal(t, RGB{}, m.At(0, 0))

	// out of range writes and reads are no-ops
	m.Set(-1, 0, RGB{R: 1})
	m.Set(3, 0, RGB{R: 1})
	m.Set(0, 2, RGB{R: 1})
	assert.Equal(t, RGB{}, m.At(-1, 0))
	assert.Equal(t, RGB{}, m.At(3, 0))

	m.Clear()
	assert.Equal(t, RGB{}, m.At(1, 1))
}

func TestFlushSerpentine(t *testing.T) {
	drv := &CaptureDriver{}
	m := NewMatrix(3, 2, drv)
	for x := 0; x < 3; x++ {
		m.Set(x, 0, RGB{R: uint8(x + 1)})
		m.Set(x, 1, RGB{G: uint8(x + 1)})
	}
	assert.NoError(t, m.Flush())

	// row 0 in order, row 1 reversed (serpentine wiring)
	frame := drv.Last()
	assert.Equal(t, []RGB{
		{R: 1}, {R: 2}, {R: 3},
		{G: 3}, {G: 2}, {G: 1},
	}, frame)
}

func TestFlushAppliesBrightness(t *testing.T) {
	drv := &CaptureDriver{}
	m := NewMatrix(2, 1, drv)
	m.Set(0, 0, RGB{R: 255, G: 100})
	m.SetBrightness(128)
	assert.NoError(t, m.Flush())

	frame := drv.Last()
	assert.Equal(t, RGB{R: 128, G: 50}, frame[0])
	assert.Equal(t, RGB{}, frame[1])

	// brightness scales at flush only, the buffer keeps full values
	assert.Equal(t, RGB{R: 255, G: 100}, m.At(0, 0))
}

func TestSetBrightnessClamps(t *testing.T) {
	m := NewMatrix(1, 1, &CaptureDriver{})
	m.SetBrightness(300)
	assert.Equal(t, 255, m.Brightness())
	m.SetBrightness(-1)
	assert.Equal(t, 0, m.Brightness())
}

func TestSerialDriverFraming(t *testing.T) {
	var buf bytes.Buffer
	d, err := NewSerialDriver(&buf, "GRB")
	assert.NoError(t, err)

	assert.NoError(t, d.Write([]RGB{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}))
	assert.Equal(t, []byte{'*', 6, 0, 2, 1, 3, 5, 4, 6}, buf.Bytes())
}

func TestSerialDriverUnknownOrder(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewSerialDriver(&buf, "XYZ")
	assert.Error(t, err)
}
