package chip8

// VM is the complete interpreter state: memory, registers, call stack,
// framebuffer, timers, and program counter, driven against a Host.
type VM struct {
	Memory      *Memory
	Registers   *Registers
	Stack       *Stack
	Framebuffer *Framebuffer

	// PC is the 12-bit program counter.
	PC uint16

	// DT and ST are the delay and sound timers. Both count down at 60 Hz;
	// ST > 0 is the "sound on" signal, though audio output itself is a
	// host-layer concern, not the interpreter's.
	DT byte
	ST byte

	host Host
}

// NewVM returns a freshly reset interpreter: font loaded, registers and
// stack zeroed, PC at ProgramStart, wired to host for display/input/rng.
func NewVM(host Host) *VM {
	return &VM{
		Memory:      NewMemory(),
		Registers:   NewRegisters(),
		Stack:       NewStack(),
		Framebuffer: NewFramebuffer(),
		PC:          ProgramStart,
		host:        host,
	}
}

// LoadProgram loads a ROM into the 0x200.. region. It must be called before
// Step.
func (vm *VM) LoadProgram(program []byte) error {
	return vm.Memory.LoadProgram(program)
}

// Step runs one fetch/decode/execute cycle: it fetches the opcode at PC,
// decodes it, applies it to the VM, and advances PC. It returns the first
// fatal error encountered (decode failure, stack overflow/underflow).
func (vm *VM) Step() error {
	op := uint16(vm.Memory.Read(vm.PC))<<8 | uint16(vm.Memory.Read(vm.PC+1))

	inst, err := Decode(op)
	if err != nil {
		return err
	}

	return vm.execute(inst)
}

func (vm *VM) execute(inst Instruction) error {
	r := vm.Registers
	pc := vm.PC
	next := pc + 2 // default: advance past this instruction

	switch inst.Op {
	case OpCLS:
		vm.Framebuffer.Clear()

	case OpRET:
		addr, err := vm.Stack.Pop()
		if err != nil {
			return err
		}
		next = addr

	case OpJP:
		next = inst.NNN

	case OpCALL:
		if err := vm.Stack.Push(pc + 2); err != nil {
			return err
		}
		next = inst.NNN

	case OpSEVxKK:
		if r.V(inst.X) == inst.KK {
			next = pc + 4
		}

	case OpSNEVxKK:
		if r.V(inst.X) != inst.KK {
			next = pc + 4
		}

	case OpSEVxVy:
		if r.V(inst.X) == r.V(inst.Y) {
			next = pc + 4
		}

	case OpSNEVxVy:
		if r.V(inst.X) != r.V(inst.Y) {
			next = pc + 4
		}

	case OpLDVxKK:
		r.SetV(inst.X, inst.KK)

	case OpADDVxKK:
		r.SetV(inst.X, r.V(inst.X)+inst.KK)

	case OpLDVxVy:
		r.SetV(inst.X, r.V(inst.Y))

	case OpORVxVy:
		r.SetV(inst.X, r.V(inst.X)|r.V(inst.Y))

	case OpANDVxVy:
		r.SetV(inst.X, r.V(inst.X)&r.V(inst.Y))

	case OpXORVxVy:
		r.SetV(inst.X, r.V(inst.X)^r.V(inst.Y))

	case OpADDVxVy:
		sum := uint16(r.V(inst.X)) + uint16(r.V(inst.Y))
		r.SetV(inst.X, byte(sum))
		r.SetV(0xF, boolByte(sum > 0xFF))

	case OpSUBVxVy:
		vx, vy := r.V(inst.X), r.V(inst.Y)
		r.SetV(inst.X, vx-vy)
		r.SetV(0xF, boolByte(vx >= vy))

	case OpSUBNVxVy:
		vx, vy := r.V(inst.X), r.V(inst.Y)
		r.SetV(inst.X, vy-vx)
		r.SetV(0xF, boolByte(vy >= vx))

	case OpSHRVx:
		vx := r.V(inst.X)
		r.SetV(inst.X, vx>>1)
		r.SetV(0xF, vx&0x1)

	case OpSHLVx:
		vx := r.V(inst.X)
		r.SetV(inst.X, vx<<1)
		r.SetV(0xF, (vx>>7)&0x1)

	case OpLDInnn:
		r.SetI(inst.NNN)

	case OpJPV0:
		next = inst.NNN + uint16(r.V(0))

	case OpRNDVxKK:
		r.SetV(inst.X, vm.host.RandomByte()&inst.KK)

	case OpDRW:
		vm.draw(inst)

	case OpSKP:
		if vm.host.IsKeyDown(r.V(inst.X)) {
			next = pc + 4
		}

	case OpSKNP:
		if !vm.host.IsKeyDown(r.V(inst.X)) {
			next = pc + 4
		}

	case OpLDVxDT:
		r.SetV(inst.X, vm.DT)

	case OpLDVxK:
		if key, ok := vm.host.TakeReleasedKey(); ok {
			r.SetV(inst.X, key)
		} else {
			next = pc // re-execute this instruction next cycle
		}

	case OpLDDTVx:
		vm.DT = r.V(inst.X)

	case OpLDSTVx:
		vm.ST = r.V(inst.X)

	case OpADDIVx:
		r.SetI(r.I() + uint16(r.V(inst.X)))

	case OpLDFVx:
		r.SetI(uint16(r.V(inst.X)) * 5)

	case OpLDBVx:
		vx := r.V(inst.X)
		vm.Memory.Write(r.I(), vx/100)
		vm.Memory.Write(r.I()+1, (vx/10)%10)
		vm.Memory.Write(r.I()+2, vx%10)

	case OpLDIVx:
		for k := uint16(0); k <= uint16(inst.X); k++ {
			vm.Memory.Write(r.I()+k, r.V(uint8(k)))
		}

	case OpLDVxI:
		for k := uint16(0); k <= uint16(inst.X); k++ {
			r.SetV(uint8(k), vm.Memory.Read(r.I()+k))
		}
	}

	vm.PC = next & 0xFFF
	return nil
}

// draw implements DRW Vx, Vy, n: XOR an n-byte sprite from mem[I..I+n] onto
// the framebuffer at (Vx mod width, Vy mod height), wrapping each pixel
// coordinate independently, and sets VF on collision.
func (vm *VM) draw(inst Instruction) {
	r := vm.Registers
	r.SetV(0xF, 0)

	sx := int(r.V(inst.X)) % FramebufferWidth
	sy := int(r.V(inst.Y)) % FramebufferHeight

	for row := 0; row < int(inst.N); row++ {
		spriteByte := vm.Memory.Read(r.I() + uint16(row))
		for bit := 0; bit < 8; bit++ {
			if spriteByte&(0x80>>uint(bit)) == 0 {
				continue
			}
			px := (sx + bit) % FramebufferWidth
			py := (sy + row) % FramebufferHeight
			if vm.Framebuffer.XorPixel(px, py) {
				r.SetV(0xF, 1)
			}
		}
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
