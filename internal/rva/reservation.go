package rva

// Reservation tracks the address registered by the last emulated
// load-reserved. It moves empty -> reserved(addr) -> empty, and the
// invalidation rules are deliberately permissive: anything other than
// the store-conditional paired with the current reservation clears it.
type Reservation struct {
	addr  uint64
	valid bool
}

func (r *Reservation) Set(addr uint64) {
	r.addr = addr
	r.valid = true
}

func (r *Reservation) Clear() {
	r.addr = 0
	r.valid = false
}

// Matches reports whether a valid reservation exists for exactly addr.
func (r *Reservation) Matches(addr uint64) bool {
	return r.valid && r.addr == addr
}
