// Command ttmodulo renders the times-table modulo circle.
package main

import (
	"os"

	"github.com/Faultbox/gldemo/internal/demo"
)

func main() {
	os.Exit(demo.Main("TTModulo", demo.NewModulo))
}
