package main

import (
	"flag"
	"log"

	"github.com/gopxl/mainthread/v2"

	"goplanet/viewer"
)

func main() {
	flag.Parse()
	mainthread.Run(func() {
		if err := viewer.Run(); err != nil {
			log.Fatalf("goplanet: %+v", err)
		}
	})
}
