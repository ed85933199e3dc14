package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Tashus/beam/animation"
	"github.com/Tashus/beam/pixel"
)

var (
	port    = flag.Int("port", 5555, "the port the control endpoint listens on")
	width   = flag.Int("width", 36, "pixels per strip")
	height  = flag.Int("height", 2, "number of strips")
	driver  = flag.String("driver", "serial", "output driver: one of serial, opc")
	dev     = flag.String("dev", "/dev/ttyACM0", "serial device of the LED adapter")
	opcAddr = flag.String("opc", "localhost:7890", "OPC server address for the simulator driver")
	order   = flag.String("order", "GRB", "channel order of the pixels")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)

	var drv pixel.Driver
	switch *driver {
	case "serial":
		f, err := os.OpenFile(*dev, os.O_RDWR, os.ModePerm)
		if err != nil {
			log.Fatalf("failed opening %s: %v", *dev, err)
		}
		drv, err = pixel.NewSerialDriver(f, *order)
		if err != nil {
			log.Fatalf("failed creating serial driver: %v", err)
		}
	case "opc":
		var err error
		drv, err = pixel.NewOPCDriver(*opcAddr)
		if err != nil {
			log.Fatalf("failed connecting to OPC server %s: %v", *opcAddr, err)
		}
	default:
		log.Fatalf("unrecognized driver: %s", *driver)
	}

	matrix := pixel.NewMatrix(*width, *height, drv)
	cfg := animation.NewConfig()

	m := newControl(cfg)
	go m.Run(*port)

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	animation.NewScheduler(cfg, matrix, rnd).Run(make(chan struct{}))
}
