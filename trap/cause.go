package trap

import "fmt"

// Cause is a RISC-V synchronous exception code: the mcause register
// value with the interrupt bit clear.
type Cause uint64

const (
	CauseInstructionMisaligned Cause = 0
	CauseInstructionFault      Cause = 1
	CauseIllegalInstruction    Cause = 2
	CauseBreakpoint            Cause = 3
	CauseLoadMisaligned        Cause = 4
	CauseLoadFault             Cause = 5
	CauseStoreMisaligned       Cause = 6
	CauseStoreFault            Cause = 7
	CauseECallU                Cause = 8
	CauseECallS                Cause = 9
	CauseECallM                Cause = 11
	CauseInstructionPageFault  Cause = 12
	CauseLoadPageFault         Cause = 13
	CauseStorePageFault        Cause = 15
)

var causeNames = [...]string{
	0:  "Instruction Address Misaligned",
	1:  "Instruction Access Fault",
	2:  "Illegal Instruction",
	3:  "Breakpoint",
	4:  "Load Address Misaligned",
	5:  "Load Access Fault",
	6:  "Store Address Misaligned",
	7:  "Store Access Fault",
	8:  "Environment Call (U-mode)",
	9:  "Environment Call (S-mode)",
	11: "Environment Call (M-mode)",
	12: "Instruction Page Fault",
	13: "Load Page Fault",
	15: "Store Page Fault",
}

func (c Cause) String() string {
	if int(c) < len(causeNames) && causeNames[c] != "" {
		return causeNames[c]
	}
	return fmt.Sprintf("Cause(%d)", uint64(c))
}
