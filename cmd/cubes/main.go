// Command cubes renders two cubes seen from an orbiting camera.
package main

import (
	"os"

	"github.com/Faultbox/gldemo/internal/demo"
)

func main() {
	os.Exit(demo.Main("Cube Window", demo.NewCubes))
}
