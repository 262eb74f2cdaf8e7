// Command cubewave renders a grid of cubes riding a sine wave.
package main

import (
	"os"

	"github.com/Faultbox/gldemo/internal/demo"
)

func main() {
	os.Exit(demo.Main("Cube Wave", demo.NewCubeWave))
}
