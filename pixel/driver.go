package pixel

// Driver pushes a fully rendered, strip-ordered frame to whatever is
// actually lighting up: a serial LED adapter, an OPC simulator, or a test
// capture buffer.
type Driver interface {
	Write(frame []RGB) error
}
