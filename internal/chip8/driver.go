package chip8

// DefaultCyclesPerFrame is the number of instructions executed for every
// displayed frame. At a nominal 60 Hz frame rate this yields roughly 660 Hz
// of instruction throughput, matching the pacing most CHIP-8 ROMs assume.
const DefaultCyclesPerFrame = 11

// Driver runs a VM forward in fixed-size frames: N instructions, then a
// single timer tick, a framebuffer blit, and a host close check. Timers
// tick exactly once per frame, independent of how many instructions ran —
// some historical implementations tick timers inside the instruction loop
// and skip a cycle when they fire, which starves execution; this driver
// does not reproduce that.
type Driver struct {
	VM             *VM
	host           Host
	CyclesPerFrame int
}

// NewDriver returns a driver for vm, executing cyclesPerFrame instructions
// per frame. A cyclesPerFrame of 0 or less falls back to
// DefaultCyclesPerFrame.
func NewDriver(vm *VM, host Host, cyclesPerFrame int) *Driver {
	if cyclesPerFrame <= 0 {
		cyclesPerFrame = DefaultCyclesPerFrame
	}
	return &Driver{VM: vm, host: host, CyclesPerFrame: cyclesPerFrame}
}

// RunFrame executes one frame's worth of instructions, ticks DT/ST once,
// and blits the resulting framebuffer to the host. It returns the first
// fatal error encountered, if any, stopping before completing the frame.
func (d *Driver) RunFrame() error {
	for i := 0; i < d.CyclesPerFrame; i++ {
		if err := d.VM.Step(); err != nil {
			return err
		}
	}

	if d.VM.DT > 0 {
		d.VM.DT--
	}
	if d.VM.ST > 0 {
		d.VM.ST--
	}

	d.host.Blit(d.VM.Framebuffer.Snapshot())
	return nil
}

// Run repeatedly calls RunFrame until the host signals it should close or a
// fatal error occurs.
func (d *Driver) Run() error {
	for !d.host.ShouldClose() {
		if err := d.RunFrame(); err != nil {
			return err
		}
	}
	return nil
}
