package chip8

import "testing"

func TestRegistersGetSet(t *testing.T) {
	r := NewRegisters()
	r.SetV(1, 2)
	r.SetV(2, 4)

	if got := r.V(1); got != 2 {
		t.Errorf("V1 = %d, want 2", got)
	}
	if got := r.V(2); got != 4 {
		t.Errorf("V2 = %d, want 4", got)
	}
}

func TestIRegisterMasksTo12Bits(t *testing.T) {
	r := NewRegisters()
	r.SetI(0x1234)
	if got := r.I(); got != 0x234 {
		t.Errorf("I = %#04x, want %#03x", got, 0x234)
	}
}
