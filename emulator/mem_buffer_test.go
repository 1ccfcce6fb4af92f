package emulator

import (
	"errors"
	"testing"
)

func TestMemBufferRoundTrip(t *testing.T) {
	mb := NewMemBuffer(0x1000, 0x20)
	if err := mb.Write32(0x1000, 0x11223344); err != nil {
		t.Fatal(err)
	}
	if got, err := mb.Read32(0x1000); err != nil || got != 0x11223344 {
		t.Errorf("Read32 = %#x, %v", got, err)
	}
	// Little-endian layout.
	if mb.Data[0] != 0x44 || mb.Data[3] != 0x11 {
		t.Errorf("byte order = % x, want little-endian", mb.Data[:4])
	}
	if err := mb.Write64(0x1008, 0x8877665544332211); err != nil {
		t.Fatal(err)
	}
	if got, err := mb.Read64(0x1008); err != nil || got != 0x8877665544332211 {
		t.Errorf("Read64 = %#x, %v", got, err)
	}
	if got, err := mb.Fetch(0x1000); err != nil || got != 0x11223344 {
		t.Errorf("Fetch = %#x, %v", got, err)
	}
}

func TestMemBufferBounds(t *testing.T) {
	mb := NewMemBuffer(0x1000, 0x10)
	if _, err := mb.Read32(0xFFC); !errors.Is(err, ErrAddressInvalid) {
		t.Errorf("Read32 below base = %v, want ErrAddressInvalid", err)
	}
	if _, err := mb.Read32(0x100E); !errors.Is(err, ErrAddressInvalid) {
		t.Errorf("Read32 straddling end = %v, want ErrAddressInvalid", err)
	}
	if err := mb.Write64(0x100C, 1); !errors.Is(err, ErrAddressInvalid) {
		t.Errorf("Write64 past end = %v, want ErrAddressInvalid", err)
	}
	if !mb.Contains(0x1000) || mb.Contains(0x1010) {
		t.Errorf("Contains range wrong")
	}
}

func TestAligned(t *testing.T) {
	if !Aligned(uint64(0x2000), uint64(8)) {
		t.Errorf("0x2000 should be 8-byte aligned")
	}
	if Aligned(uint64(0x2002), uint64(4)) {
		t.Errorf("0x2002 should not be 4-byte aligned")
	}
	if Align(5, 4) != 8 || Align(8, 4) != 8 {
		t.Errorf("Align rounding wrong")
	}
}
