package emulator

type ByteOrder int

const (
	BO_LITTLE_ENDIAN ByteOrder = iota
	BO_BIG_ENDIAN
)

// Memory is word-granular access to the running program's memory.
// RISC-V instruction fetch and the atomic data accesses are the only
// operations the trap core performs, so nothing wider is exposed.
type Memory interface {
	// Fetch reads the 32-bit instruction word at pc.
	Fetch(pc uint64) (uint32, error)
	Read32(addr uint64) (uint32, error)
	Write32(addr uint64, value uint32) error
	Read64(addr uint64) (uint64, error)
	Write64(addr uint64, value uint64) error
}
