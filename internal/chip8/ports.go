package chip8

// Host is the single capability the interpreter is parameterized over. All
// of windowing, input, and randomness are external collaborators from the
// core's point of view. The driver calls Blit and ShouldClose once per
// frame; the VM calls TakeReleasedKey on each Fx0A, IsKeyDown on each
// Ex9E/ExA1, and RandomByte on each Cxkk. None is called from more than one
// thread.
//
// A production Host is backed by a real window (internal/display); tests
// use a scripted fake.
type Host interface {
	// Blit displays a fresh framebuffer snapshot. Called once per frame.
	Blit(frame [FramebufferHeight][FramebufferWidth]bool)

	// ShouldClose reports whether the host wants the interpreter to stop.
	// Checked once per frame.
	ShouldClose() bool

	// IsKeyDown reports whether hex key code (0x0-0xF) is currently held.
	IsKeyDown(code uint8) bool

	// TakeReleasedKey returns the hex key released since the last call, if
	// any. It must not block; Fx0A relies on it returning ok=false so the
	// driver can keep pumping frames while a ROM waits for input.
	TakeReleasedKey() (code uint8, ok bool)

	// RandomByte returns a uniformly distributed random byte, used by Cxkk.
	RandomByte() byte
}
