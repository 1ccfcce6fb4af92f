package rva

import (
	"golang.org/x/exp/constraints"

	"github.com/wnxd/microtrap/emulator"
)

// Emulate performs the read-modify-write described by op against ctx
// and mem, and updates res per the LR/SC pairing rules. The caller is
// responsible for masking interrupts around the call; Emulate itself
// is plain sequential register and memory manipulation.
//
// An error means the trap must not be claimed. Errors are only
// returned before any register or memory mutation, so the context is
// untouched on every error path.
func Emulate(op Op, ctx emulator.RegisterContext, mem emulator.Memory, res *Reservation) error {
	addr, err := ctx.RegRead(op.Rs1)
	if err != nil {
		return err
	}
	if !emulator.Aligned(addr, uint64(op.Width)) {
		// Real hardware raises an address-misaligned fault here, not
		// an illegal-instruction fault. Leave the trap unclaimed.
		res.Clear()
		return emulator.ErrUnalignedAccess
	}
	switch op.Kind {
	case KindLoadReserved:
		res.Clear()
		return loadReserved(op, addr, ctx, mem, res)
	case KindStoreConditional:
		return storeConditional(op, addr, ctx, mem, res)
	case KindSwap, KindAdd, KindXor, KindAnd, KindOr,
		KindMin, KindMax, KindMinU, KindMaxU:
		res.Clear()
		return atomicMemoryOp(op, addr, ctx, mem)
	default:
		res.Clear()
		return ErrOpUnsupported
	}
}

func loadReserved(op Op, addr uint64, ctx emulator.RegisterContext, mem emulator.Memory, res *Reservation) error {
	var value uint64
	switch op.Width {
	case Width64:
		v, err := mem.Read64(addr)
		if err != nil {
			return err
		}
		value = v
	default:
		v, err := mem.Read32(addr)
		if err != nil {
			return err
		}
		value = uint64(int64(int32(v)))
	}
	if err := ctx.RegWrite(op.Rd, value); err != nil {
		return err
	}
	res.Set(addr)
	return nil
}

func storeConditional(op Op, addr uint64, ctx emulator.RegisterContext, mem emulator.Memory, res *Reservation) error {
	// A store-conditional consumes the reservation whether or not it
	// succeeds.
	defer res.Clear()
	if !res.Matches(addr) {
		return ctx.RegWrite(op.Rd, 1)
	}
	value, err := ctx.RegRead(op.Rs2)
	if err != nil {
		return err
	}
	switch op.Width {
	case Width64:
		err = mem.Write64(addr, value)
	default:
		err = mem.Write32(addr, uint32(value))
	}
	if err != nil {
		return err
	}
	return ctx.RegWrite(op.Rd, 0)
}

func atomicMemoryOp(op Op, addr uint64, ctx emulator.RegisterContext, mem emulator.Memory) error {
	operand, err := ctx.RegRead(op.Rs2)
	if err != nil {
		return err
	}
	switch op.Width {
	case Width64:
		old, err := mem.Read64(addr)
		if err != nil {
			return err
		}
		if err := mem.Write64(addr, amoALU[uint64, int64](op.Kind, old, operand)); err != nil {
			return err
		}
		return ctx.RegWrite(op.Rd, old)
	default:
		old, err := mem.Read32(addr)
		if err != nil {
			return err
		}
		if err := mem.Write32(addr, amoALU[uint32, int32](op.Kind, old, uint32(operand))); err != nil {
			return err
		}
		// The old value is written back sign-extended, matching LW.
		return ctx.RegWrite(op.Rd, uint64(int64(int32(old))))
	}
}

// amoALU computes the value an AMO stores back. The signed type
// parameter carries the width's signed interpretation for MIN/MAX.
func amoALU[U constraints.Unsigned, S constraints.Signed](kind Kind, a, b U) U {
	switch kind {
	case KindSwap:
		return b
	case KindAdd:
		return a + b
	case KindXor:
		return a ^ b
	case KindAnd:
		return a & b
	case KindOr:
		return a | b
	case KindMin:
		return U(min(S(a), S(b)))
	case KindMax:
		return U(max(S(a), S(b)))
	case KindMinU:
		return min(a, b)
	case KindMaxU:
		return max(a, b)
	default:
		return a
	}
}
