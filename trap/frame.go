package trap

import "github.com/wnxd/microtrap/emulator"

// Frame is the register context the runtime saves at trap entry and
// restores at trap exit. On RV32 targets only the low 32 bits of each
// slot are meaningful.
type Frame struct {
	X      [emulator.NumRegs]uint64
	PC     uint64
	Cause  Cause
	Status uint64
}

func (f *Frame) RegRead(reg emulator.Reg) (uint64, error) {
	if reg < 0 || reg >= emulator.NumRegs {
		return 0, ErrRegInvalid
	}
	if reg == emulator.X0 {
		return 0, nil
	}
	return f.X[reg], nil
}

// RegWrite stores value in reg. Writes to X0 are discarded, matching
// the hard-wired zero register.
func (f *Frame) RegWrite(reg emulator.Reg, value uint64) error {
	if reg < 0 || reg >= emulator.NumRegs {
		return ErrRegInvalid
	}
	if reg == emulator.X0 {
		return nil
	}
	f.X[reg] = value
	return nil
}
