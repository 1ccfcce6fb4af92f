package trap

import (
	"errors"
	"testing"

	"github.com/wnxd/microtrap/emulator"
)

func TestFrameZeroRegister(t *testing.T) {
	var frame Frame
	if err := frame.RegWrite(emulator.X0, 0xDEAD); err != nil {
		t.Fatalf("RegWrite(x0): %v", err)
	}
	if got, err := frame.RegRead(emulator.X0); err != nil || got != 0 {
		t.Errorf("RegRead(x0) = %d, %v; want hard-wired zero", got, err)
	}
	if frame.X[0] != 0 {
		t.Errorf("write to x0 landed in the frame")
	}
}

func TestFrameRegReadWrite(t *testing.T) {
	var frame Frame
	if err := frame.RegWrite(emulator.X31, 42); err != nil {
		t.Fatalf("RegWrite: %v", err)
	}
	if got, err := frame.RegRead(emulator.X31); err != nil || got != 42 {
		t.Errorf("RegRead(x31) = %d, %v; want 42", got, err)
	}
}

func TestFrameRegBounds(t *testing.T) {
	var frame Frame
	if _, err := frame.RegRead(emulator.Reg(32)); !errors.Is(err, ErrRegInvalid) {
		t.Errorf("RegRead(32) = %v, want ErrRegInvalid", err)
	}
	if err := frame.RegWrite(emulator.Reg(-1), 1); !errors.Is(err, ErrRegInvalid) {
		t.Errorf("RegWrite(-1) = %v, want ErrRegInvalid", err)
	}
}
