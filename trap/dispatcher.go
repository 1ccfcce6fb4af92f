package trap

import (
	"github.com/wnxd/microtrap/emulator"
	"github.com/wnxd/microtrap/internal/rva"
)

// All supported encodings are standard 32-bit instructions.
const instrLen = 4

// Dispatcher is the trap entry point. The runtime installs Handle as
// (or calls it from) its trap vector and acts on the returned Outcome.
// A Dispatcher is not reentrant; it assumes the single-core,
// one-trap-at-a-time model the runtime's trap vector provides.
type Dispatcher struct {
	arch     emulator.Arch
	mem      emulator.Memory
	intc     emulator.InterruptController
	fallback FallbackHandler
	res      rva.Reservation
}

// New builds a Dispatcher for arch. fallback may be nil, in which case
// forwarded traps are reported only through the returned Outcome.
func New(arch emulator.Arch, mem emulator.Memory, intc emulator.InterruptController, fallback FallbackHandler) (*Dispatcher, error) {
	switch arch {
	case emulator.ARCH_RV32, emulator.ARCH_RV64:
	default:
		return nil, emulator.ErrArchUnsupported
	}
	if mem == nil || intc == nil {
		return nil, ErrArgumentInvalid
	}
	return &Dispatcher{arch: arch, mem: mem, intc: intc, fallback: fallback}, nil
}

// IsAtomic reports whether insn carries the atomic-extension major
// opcode. Runtimes can use it to pre-filter before building a full
// trap frame.
func IsAtomic(insn uint32) bool {
	return rva.IsAtomic(insn)
}

// Handle processes one trap. Illegal-instruction faults on recognized
// atomic encodings are emulated and resumed past; everything else is
// forwarded with the frame untouched.
func (d *Dispatcher) Handle(frame *Frame) Outcome {
	if frame.Cause != CauseIllegalInstruction {
		// Any trap taken between a load-reserved and its paired
		// store-conditional breaks the reservation.
		d.res.Clear()
		return d.forward(frame)
	}
	insn, err := d.mem.Fetch(frame.PC)
	if err != nil {
		d.res.Clear()
		return d.forward(frame)
	}
	op := rva.Decode(insn, d.arch)
	if op.Kind == rva.KindUnsupported {
		d.res.Clear()
		return d.forward(frame)
	}
	if err := d.emulate(op, frame); err != nil {
		return d.forward(frame)
	}
	return Outcome{Disposition: Resume, NewPC: frame.PC + instrLen}
}

// emulate runs the read-modify-write with interrupts masked. The
// deferred restore covers every exit path, including a panicking
// Memory implementation.
func (d *Dispatcher) emulate(op rva.Op, frame *Frame) error {
	status := d.intc.DisableInterrupts()
	defer d.intc.RestoreInterrupts(status)
	return rva.Emulate(op, frame, d.mem, &d.res)
}

func (d *Dispatcher) forward(frame *Frame) Outcome {
	if d.fallback != nil {
		d.fallback(frame.Cause, frame)
	}
	return Outcome{Disposition: Forward}
}
