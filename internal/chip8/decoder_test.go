package chip8

import "testing"

func TestDecodeKnownOpcodes(t *testing.T) {
	cases := []struct {
		name string
		op   uint16
		want Instruction
	}{
		{"CLS", 0x00E0, Instruction{Op: OpCLS}},
		{"RET", 0x00EE, Instruction{Op: OpRET}},
		{"JP", 0x1206, Instruction{Op: OpJP, NNN: 0x206}},
		{"CALL", 0x2206, Instruction{Op: OpCALL, NNN: 0x206}},
		{"SE Vx,kk", 0x3102, Instruction{Op: OpSEVxKK, X: 1, KK: 0x02}},
		{"SNE Vx,kk", 0x4102, Instruction{Op: OpSNEVxKK, X: 1, KK: 0x02}},
		{"SE Vx,Vy", 0x5120, Instruction{Op: OpSEVxVy, X: 1, Y: 2}},
		{"LD Vx,kk", 0x61AB, Instruction{Op: OpLDVxKK, X: 1, KK: 0xAB}},
		{"ADD Vx,kk", 0x7202, Instruction{Op: OpADDVxKK, X: 2, KK: 0x02}},
		{"LD Vx,Vy", 0x8120, Instruction{Op: OpLDVxVy, X: 1, Y: 2}},
		{"OR", 0x8121, Instruction{Op: OpORVxVy, X: 1, Y: 2}},
		{"AND", 0x8122, Instruction{Op: OpANDVxVy, X: 1, Y: 2}},
		{"XOR", 0x8123, Instruction{Op: OpXORVxVy, X: 1, Y: 2}},
		{"ADD Vx,Vy", 0x8124, Instruction{Op: OpADDVxVy, X: 1, Y: 2}},
		{"SUB", 0x8125, Instruction{Op: OpSUBVxVy, X: 1, Y: 2}},
		{"SHR", 0x8126, Instruction{Op: OpSHRVx, X: 1, Y: 2}},
		{"SUBN", 0x8127, Instruction{Op: OpSUBNVxVy, X: 1, Y: 2}},
		{"SHL", 0x812E, Instruction{Op: OpSHLVx, X: 1, Y: 2}},
		{"SNE Vx,Vy", 0x9120, Instruction{Op: OpSNEVxVy, X: 1, Y: 2}},
		{"LD I", 0xA300, Instruction{Op: OpLDInnn, NNN: 0x300}},
		{"JP V0", 0xB300, Instruction{Op: OpJPV0, NNN: 0x300}},
		{"RND", 0xC1FF, Instruction{Op: OpRNDVxKK, X: 1, KK: 0xFF}},
		{"DRW", 0xD125, Instruction{Op: OpDRW, X: 1, Y: 2, N: 5}},
		{"SKP", 0xE19E, Instruction{Op: OpSKP, X: 1}},
		{"SKNP", 0xE1A1, Instruction{Op: OpSKNP, X: 1}},
		{"LD Vx,DT", 0xF107, Instruction{Op: OpLDVxDT, X: 1}},
		{"LD Vx,K", 0xF10A, Instruction{Op: OpLDVxK, X: 1}},
		{"LD DT,Vx", 0xF115, Instruction{Op: OpLDDTVx, X: 1}},
		{"LD ST,Vx", 0xF118, Instruction{Op: OpLDSTVx, X: 1}},
		{"ADD I,Vx", 0xF11E, Instruction{Op: OpADDIVx, X: 1}},
		{"LD F,Vx", 0xF129, Instruction{Op: OpLDFVx, X: 1}},
		{"LD B,Vx", 0xF133, Instruction{Op: OpLDBVx, X: 1}},
		{"LD [I],Vx", 0xF155, Instruction{Op: OpLDIVx, X: 1}},
		{"LD Vx,[I]", 0xF165, Instruction{Op: OpLDVxI, X: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Decode(c.op)
			if err != nil {
				t.Fatalf("Decode(%#04x): unexpected error: %v", c.op, err)
			}
			if got != c.want {
				t.Errorf("Decode(%#04x) = %+v, want %+v", c.op, got, c.want)
			}
		})
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	unknown := []uint16{0x0123, 0x5123, 0x8128, 0x9123, 0xE199, 0xF199}
	for _, op := range unknown {
		if _, err := Decode(op); err == nil {
			t.Errorf("Decode(%#04x): expected DecodeError", op)
		}
	}
}
