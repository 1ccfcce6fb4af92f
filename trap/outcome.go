package trap

type Disposition int

const (
	// Forward means the trap was not claimed: the frame is untouched
	// and the registered fallback handler has been invoked.
	Forward Disposition = iota
	// Resume means the instruction was emulated. The runtime must
	// write NewPC into the saved program counter and return from the
	// trap.
	Resume
)

// Outcome is the result of handling one trap.
type Outcome struct {
	Disposition Disposition
	// NewPC is the resumption address, set only for Resume.
	NewPC uint64
}
