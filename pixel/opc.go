package pixel

import (
	"github.com/kellydunn/go-opc"
)

// OPCDriver sends frames to an Open Pixel Control server, typically the gl
// simulator, standing in for real hardware during development.
type OPCDriver struct {
	client *opc.Client
}

func NewOPCDriver(server string) (*OPCDriver, error) {
	c := opc.NewClient()
	if err := c.Connect("tcp", server); err != nil {
		return nil, err
	}
	return &OPCDriver{client: c}, nil
}

func (d *OPCDriver) Write(frame []RGB) error {
	m := opc.NewMessage(0)
	m.SetLength(uint16(len(frame) * 3))
	for i, c := range frame {
		m.SetPixelColor(i, c.R, c.G, c.B)
	}
	return d.client.Send(m)
}
