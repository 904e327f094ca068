package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/hexpad/chippy8/cmd"
)

func main() {
	// pixelgl needs access to the OS main thread, so cmd.Execute runs inside
	// pixelgl.Run rather than directly from main.
	pixelgl.Run(cmd.Execute)
}
