// Command triangle renders an RGB triangle offscreen and saves it as an image.
//
// The image format follows the extension of -output (png, jpg, webp, bmp,
// tiff or tga).
package main

import (
	"os"

	"github.com/Faultbox/gldemo/internal/demo"
)

func main() {
	os.Exit(demo.RenderMain("Triangle", demo.NewTriangle))
}
