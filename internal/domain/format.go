package domain

// Notation is a textual layout for a MAC address.
type Notation int

const (
	// Colon is six two-digit groups joined by ':'.
	Colon Notation = iota
	// Dashed is six two-digit groups joined by '-'.
	Dashed
	// Cisco is three four-digit groups joined by '.'.
	Cisco
)

// String returns the flag name of the notation.
func (n Notation) String() string {
	switch n {
	case Colon:
		return "colon"
	case Dashed:
		return "dashed"
	case Cisco:
		return "cisco"
	default:
		return "unknown"
	}
}

// Format is the set of output options requested by the caller.
// The notation flags are independent; every one that is set is rendered.
type Format struct {
	Dashed bool
	Colon  bool
	Cisco  bool
	Caps   bool
}

// Notations lists the notations to render, always in the order
// Cisco, Colon, Dashed. Colon is used when no notation was requested.
func (f Format) Notations() []Notation {
	fallback := !f.Cisco && !f.Dashed && !f.Colon

	out := make([]Notation, 0, 3)
	if f.Cisco {
		out = append(out, Cisco)
	}
	if f.Colon || fallback {
		out = append(out, Colon)
	}
	if f.Dashed {
		out = append(out, Dashed)
	}
	return out
}
