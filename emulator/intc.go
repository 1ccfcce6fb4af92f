package emulator

// IntrStatus is the opaque prior interrupt-enable state returned by
// DisableInterrupts and handed back to RestoreInterrupts.
type IntrStatus uint64

// InterruptController masks and restores maskable interrupts on the
// executing core. The trap core brackets every emulation sequence with
// a DisableInterrupts/RestoreInterrupts pair and never interprets the
// status value in between.
type InterruptController interface {
	DisableInterrupts() IntrStatus
	RestoreInterrupts(status IntrStatus)
}
