package chip8

import "testing"

func TestXorPixelReturnsPriorValue(t *testing.T) {
	fb := NewFramebuffer()

	if was := fb.XorPixel(6, 1); was {
		t.Fatal("first XOR should report pixel was off")
	}
	if was := fb.XorPixel(6, 1); !was {
		t.Fatal("second XOR should report pixel was on")
	}
}

func TestClearResetsAllPixels(t *testing.T) {
	fb := NewFramebuffer()
	fb.XorPixel(0, 0)
	fb.XorPixel(63, 31)

	fb.Clear()

	snap := fb.Snapshot()
	for y := 0; y < FramebufferHeight; y++ {
		for x := 0; x < FramebufferWidth; x++ {
			if snap[y][x] {
				t.Fatalf("pixel (%d,%d) still on after Clear", x, y)
			}
		}
	}
}

func TestDrawIsPairwiseIdempotent(t *testing.T) {
	vm := NewVM(&fakeHost{})
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}
	copy(vm.Memory.bytes[0x300:], sprite)
	vm.Registers.SetI(0x300)
	vm.Registers.SetV(0, 6)
	vm.Registers.SetV(1, 1)

	inst := Instruction{Op: OpDRW, X: 0, Y: 1, N: uint8(len(sprite))}
	vm.draw(inst)
	vm.draw(inst)

	snap := vm.Framebuffer.Snapshot()
	for y := 0; y < FramebufferHeight; y++ {
		for x := 0; x < FramebufferWidth; x++ {
			if snap[y][x] {
				t.Fatalf("pixel (%d,%d) left on after drawing the same sprite twice", x, y)
			}
		}
	}
}
