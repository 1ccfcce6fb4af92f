package emulator

type Arch int

const (
	ARCH_UNKNOWN Arch = iota
	ARCH_RV32
	ARCH_RV64
)

// XLen returns the register width of the architecture in bits.
func (a Arch) XLen() int {
	switch a {
	case ARCH_RV32:
		return 32
	case ARCH_RV64:
		return 64
	default:
		return 0
	}
}
