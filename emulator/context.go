package emulator

// RegisterContext is the general-purpose register file saved by the
// runtime at trap entry. Implementations must read X0 as the constant
// zero and discard writes to it.
type RegisterContext interface {
	RegRead(reg Reg) (uint64, error)
	RegWrite(reg Reg, value uint64) error
}
