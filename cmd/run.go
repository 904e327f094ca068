package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexpad/chippy8/internal/chip8"
	"github.com/hexpad/chippy8/internal/display"
)

var (
	cyclesPerFrame int
	windowScale    float64
	beepAssetPath  string
)

// runCmd runs the chippy8 interpreter against a ROM and waits for the host
// window to close.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chippy8 interpreter",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy8,
}

func init() {
	runCmd.Flags().IntVar(&cyclesPerFrame, "cycles", chip8.DefaultCyclesPerFrame, "instructions executed per displayed frame")
	runCmd.Flags().Float64Var(&windowScale, "scale", 1, "window scale factor")
	runCmd.Flags().StringVar(&beepAssetPath, "beep", "", "path to an mp3 played while the sound timer is running (optional)")
}

func runChippy8(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	rom, err := os.ReadFile(pathToROM)
	if err != nil {
		fmt.Printf("error reading ROM: %v\n", err)
		os.Exit(1)
	}

	win, err := display.NewWindow("chippy8", windowScale)
	if err != nil {
		fmt.Printf("error creating window: %v\n", err)
		os.Exit(1)
	}

	var beeper *display.Beeper
	if beepAssetPath != "" {
		beeper, err = display.NewBeeper(beepAssetPath)
		if err != nil {
			fmt.Printf("error loading beep asset, continuing without sound: %v\n", err)
		} else {
			defer beeper.Close()
		}
	}

	vm := chip8.NewVM(win)
	if err := vm.LoadProgram(rom); err != nil {
		fmt.Printf("error loading ROM: %v\n", err)
		os.Exit(1)
	}

	driver := chip8.NewDriver(vm, win, cyclesPerFrame)
	for !win.ShouldClose() {
		if err := driver.RunFrame(); err != nil {
			fmt.Printf("fatal error: %v\n", err)
			os.Exit(1)
		}
		if beeper != nil {
			beeper.Update(vm.ST)
		}
	}
}
