package emulator

import "unsafe"

// HostMemory accesses program memory through host addresses. On a
// bare-metal target the faulting program and the trap handler share
// one flat address space, so the operand address held in the source
// register is directly dereferenceable. Addresses are trusted: a
// faulting access here is a new exception for the runtime's normal
// fault handling, exactly as it would be for the original instruction.
type HostMemory struct{}

func (HostMemory) Fetch(pc uint64) (uint32, error) {
	return *(*uint32)(unsafe.Pointer(uintptr(pc))), nil
}

func (HostMemory) Read32(addr uint64) (uint32, error) {
	return *(*uint32)(unsafe.Pointer(uintptr(addr))), nil
}

func (HostMemory) Write32(addr uint64, value uint32) error {
	*(*uint32)(unsafe.Pointer(uintptr(addr))) = value
	return nil
}

func (HostMemory) Read64(addr uint64) (uint64, error) {
	return *(*uint64)(unsafe.Pointer(uintptr(addr))), nil
}

func (HostMemory) Write64(addr uint64, value uint64) error {
	*(*uint64)(unsafe.Pointer(uintptr(addr))) = value
	return nil
}
