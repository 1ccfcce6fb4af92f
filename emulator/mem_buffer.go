package emulator

import (
	"encoding/binary"
	"fmt"
)

// MemBuffer implements Memory over a single contiguous region of
// memory. Hosted harnesses and tests use it in place of HostMemory.
// RISC-V is little-endian; so is the buffer.
type MemBuffer struct {
	// BaseAddr is the starting address of this memory region
	BaseAddr uint64
	// Data holds the actual memory contents
	Data []byte
}

// NewMemBuffer creates a zero-filled memory buffer of the given size
// starting at baseAddr.
func NewMemBuffer(baseAddr uint64, size int) *MemBuffer {
	return &MemBuffer{
		BaseAddr: baseAddr,
		Data:     make([]byte, size),
	}
}

func (mb *MemBuffer) slice(addr, size uint64) ([]byte, error) {
	if addr < mb.BaseAddr {
		return nil, fmt.Errorf("address 0x%X is before buffer base 0x%X: %w", addr, mb.BaseAddr, ErrAddressInvalid)
	}
	offset := addr - mb.BaseAddr
	if offset >= uint64(len(mb.Data)) || size > uint64(len(mb.Data))-offset {
		return nil, fmt.Errorf("address 0x%X is beyond buffer range (0x%X - 0x%X): %w",
			addr, mb.BaseAddr, mb.BaseAddr+uint64(len(mb.Data)), ErrAddressInvalid)
	}
	return mb.Data[offset : offset+size], nil
}

func (mb *MemBuffer) Fetch(pc uint64) (uint32, error) {
	return mb.Read32(pc)
}

func (mb *MemBuffer) Read32(addr uint64) (uint32, error) {
	b, err := mb.slice(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (mb *MemBuffer) Write32(addr uint64, value uint32) error {
	b, err := mb.slice(addr, 4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, value)
	return nil
}

func (mb *MemBuffer) Read64(addr uint64) (uint64, error) {
	b, err := mb.slice(addr, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (mb *MemBuffer) Write64(addr uint64, value uint64) error {
	b, err := mb.slice(addr, 8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, value)
	return nil
}

// Contains reports whether addr falls within this buffer's range.
func (mb *MemBuffer) Contains(addr uint64) bool {
	return addr >= mb.BaseAddr && addr < mb.BaseAddr+uint64(len(mb.Data))
}
