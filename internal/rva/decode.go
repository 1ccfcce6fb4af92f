package rva

import "github.com/wnxd/microtrap/emulator"

type Kind int

const (
	KindUnsupported Kind = iota
	KindLoadReserved
	KindStoreConditional
	KindSwap
	KindAdd
	KindXor
	KindAnd
	KindOr
	KindMin
	KindMax
	KindMinU
	KindMaxU
)

// Width is the memory-access width of an operation in bytes.
type Width int

const (
	Width32 Width = 4
	Width64 Width = 8
)

const (
	opcodeAMO = 0b0101111

	funct3Word   = 0b010
	funct3Double = 0b011

	funct5LR      = 0b00010
	funct5SC      = 0b00011
	funct5AMOSWAP = 0b00001
	funct5AMOADD  = 0b00000
	funct5AMOXOR  = 0b00100
	funct5AMOAND  = 0b01100
	funct5AMOOR   = 0b01000
	funct5AMOMIN  = 0b10000
	funct5AMOMAX  = 0b10100
	funct5AMOMINU = 0b11000
	funct5AMOMAXU = 0b11100
)

// Op is a decoded atomic-extension instruction.
type Op struct {
	Kind             Kind
	Width            Width
	Rd, Rs1, Rs2     emulator.Reg
	Acquire, Release bool
}

func opcode(insn uint32) uint32 { return insn & 0x7F }

func rd(insn uint32) emulator.Reg { return emulator.Reg(insn >> 7 & 0x1F) }

func funct3(insn uint32) uint32 { return insn >> 12 & 0b111 }

func rs1(insn uint32) emulator.Reg { return emulator.Reg(insn >> 15 & 0x1F) }

func rs2(insn uint32) emulator.Reg { return emulator.Reg(insn >> 20 & 0x1F) }

func funct5(insn uint32) uint32 { return insn >> 27 }

// IsAtomic reports whether insn carries the atomic-extension major
// opcode. It is a cheap pre-filter; Decode still rejects malformed
// encodings under the same opcode.
func IsAtomic(insn uint32) bool { return opcode(insn) == opcodeAMO }

// Decode classifies insn for arch. It is total: any word that is not a
// valid A-extension encoding comes back as KindUnsupported, never an
// error.
func Decode(insn uint32, arch emulator.Arch) Op {
	if !IsAtomic(insn) {
		return Op{}
	}
	var width Width
	switch funct3(insn) {
	case funct3Word:
		width = Width32
	case funct3Double:
		if arch != emulator.ARCH_RV64 {
			return Op{}
		}
		width = Width64
	default:
		return Op{}
	}
	op := Op{
		Width:   width,
		Rd:      rd(insn),
		Rs1:     rs1(insn),
		Rs2:     rs2(insn),
		Acquire: insn>>26&1 != 0,
		Release: insn>>25&1 != 0,
	}
	switch funct5(insn) {
	case funct5LR:
		// LR with a nonzero rs2 field is a reserved encoding.
		if op.Rs2 != emulator.X0 {
			return Op{}
		}
		op.Kind = KindLoadReserved
	case funct5SC:
		op.Kind = KindStoreConditional
	case funct5AMOSWAP:
		op.Kind = KindSwap
	case funct5AMOADD:
		op.Kind = KindAdd
	case funct5AMOXOR:
		op.Kind = KindXor
	case funct5AMOAND:
		op.Kind = KindAnd
	case funct5AMOOR:
		op.Kind = KindOr
	case funct5AMOMIN:
		op.Kind = KindMin
	case funct5AMOMAX:
		op.Kind = KindMax
	case funct5AMOMINU:
		op.Kind = KindMinU
	case funct5AMOMAXU:
		op.Kind = KindMaxU
	default:
		return Op{}
	}
	return op
}
