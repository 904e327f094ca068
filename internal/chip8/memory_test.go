package chip8

import "testing"

func TestNewMemoryLoadsFontSet(t *testing.T) {
	m := NewMemory()

	for i, b := range FontSet {
		if m.bytes[i] != b {
			t.Fatalf("font byte %d = %#02x, want %#02x", i, m.bytes[i], b)
		}
	}

	for i := len(FontSet); i < ProgramStart; i++ {
		if m.bytes[i] != 0 {
			t.Fatalf("reserved byte %d = %#02x, want 0", i, m.bytes[i])
		}
	}
}

func TestLoadProgram(t *testing.T) {
	m := NewMemory()
	program := []byte{0x10, 0x42, 0x20, 0x24}

	if err := m.LoadProgram(program); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}

	for i, b := range program {
		if got := m.Read(uint16(ProgramStart + i)); got != b {
			t.Errorf("byte %d = %#02x, want %#02x", i, got, b)
		}
	}
	if m.ProgramLen != len(program) {
		t.Errorf("ProgramLen = %d, want %d", m.ProgramLen, len(program))
	}
}

func TestLoadProgramTooLarge(t *testing.T) {
	m := NewMemory()
	err := m.LoadProgram(make([]byte, maxProgramSize+1))
	if err == nil {
		t.Fatal("expected error for oversized program")
	}
}

func TestReadWriteMasksAddress(t *testing.T) {
	m := NewMemory()
	m.Write(0x1000, 0x42) // wraps to 0x000, inside the font region
	if got := m.Read(0x000); got != 0x42 {
		t.Errorf("masked write landed at %#02x, want 0x42 at 0x000", got)
	}
}
