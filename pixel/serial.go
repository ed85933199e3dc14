package pixel

import (
	"fmt"
	"io"
)

// Orders maps a channel order name to indexes into an (R,G,B) triple, for
// strips that don't take plain RGB on the wire.
var Orders = map[string][3]int{
	"RGB": {0, 1, 2},
	"RBG": {0, 2, 1},
	"GRB": {1, 0, 2},
	"GBR": {1, 2, 0},
	"BRG": {2, 0, 1},
	"BGR": {2, 1, 0},
}

// SerialDriver frames pixel data for a serial LED adapter: a '*' marker, a
// little-endian payload length, then one reordered byte triple per pixel.
type SerialDriver struct {
	w     io.Writer
	order [3]int
	buf   []byte
}

func NewSerialDriver(w io.Writer, order string) (*SerialDriver, error) {
	o, ok := Orders[order]
	if !ok {
		return nil, fmt.Errorf("unknown channel order %q", order)
	}
	return &SerialDriver{w: w, order: o}, nil
}

func (d *SerialDriver) Write(frame []RGB) error {
	n := len(frame) * 3
	if len(d.buf) != n+3 {
		d.buf = make([]byte, n+3)
	}
	d.buf[0] = '*'
	d.buf[1] = byte(n & 0xff)
	d.buf[2] = byte(n >> 8)
	for i, c := range frame {
		ch := [3]uint8{c.R, c.G, c.B}
		d.buf[3*i+3] = ch[d.order[0]]
		d.buf[3*i+4] = ch[d.order[1]]
		d.buf[3*i+5] = ch[d.order[2]]
	}
	_, err := d.w.Write(d.buf)
	return err
}
