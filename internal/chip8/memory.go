// Package chip8 is a CHIP-8 interpreter: it fetches 16-bit opcodes out of a
// 4 KiB linear memory, decodes them into the CHIP-8 instruction set, and
// executes them against a small register file, a call stack, a 64x32
// monochrome framebuffer, two decrementing timers, and a 16-key hex keypad.
//
// The package is host-agnostic: it knows nothing about windows, audio, or
// key events beyond the small Host interface in ports.go. A concrete
// pixelgl-backed host lives in internal/display.
package chip8

import "log"

const (
	// MemorySize is the size, in bytes, of CHIP-8 addressable memory.
	MemorySize = 0x1000

	// ProgramStart is the address the loaded ROM begins at. Addresses below
	// this are reserved for the interpreter; this implementation stores the
	// font set there, following modern CHIP-8 interpreters rather than the
	// original COSMAC VIP.
	ProgramStart = 0x200

	// maxProgramSize is the largest ROM LoadProgram accepts: 0xFFF minus
	// ProgramStart, i.e. 0xDFF bytes.
	maxProgramSize = 0xFFF - ProgramStart

	fontSetSize = len(FontSet)
)

// FontSet is the built-in hex digit font, 5 bytes per glyph, glyph k at
// memory offset 5*k. See http://www.multigesture.net/articles/how-to-write-an-emulator-chip-8-interpreter
var FontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the interpreter's 4 KiB address space.
type Memory struct {
	bytes [MemorySize]byte

	// ProgramLen is the size of the most recently loaded program. It lets
	// tests stop an interpreter when PC walks off the end of the loaded
	// ROM; normal operation ignores it and runs until the host signals
	// close.
	ProgramLen int
}

// NewMemory returns memory with the font set preloaded at 0x000 and
// everything else zeroed.
func NewMemory() *Memory {
	m := &Memory{}
	copy(m.bytes[:fontSetSize], FontSet[:])
	return m
}

// LoadProgram writes bytes into memory starting at ProgramStart. It fails
// if the program is longer than maxProgramSize (0xDFF) bytes.
func (m *Memory) LoadProgram(program []byte) error {
	if len(program) > maxProgramSize {
		return &LoadError{Size: len(program), Max: maxProgramSize}
	}
	m.ProgramLen = len(program)
	copy(m.bytes[ProgramStart:ProgramStart+len(program)], program)
	return nil
}

// Read returns the byte at addr, masked to 12 bits so it can never index
// outside the array. Reads below ProgramStart are logged as a diagnostic;
// the font lives there and is read legitimately during sprite draws, so
// this is informational only.
func (m *Memory) Read(addr uint16) byte {
	addr &= 0xFFF
	if addr < ProgramStart {
		log.Printf("chip8: read from restricted memory at %#03x", addr)
	}
	return m.bytes[addr]
}

// Write stores v at addr, masked to 12 bits. See Read for the restricted
// region diagnostic.
func (m *Memory) Write(addr uint16, v byte) {
	addr &= 0xFFF
	if addr < ProgramStart {
		log.Printf("chip8: write to restricted memory at %#03x", addr)
	}
	m.bytes[addr] = v
}
