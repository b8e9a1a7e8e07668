package macaddr

import "regexp"

// Grammar identifies which accepted input shape a string matched.
type Grammar int

const (
	Bare Grammar = iota + 1
	Pairs
	Quads
)

func (g Grammar) String() string {
	switch g {
	case Bare:
		return "bare"
	case Pairs:
		return "pairs"
	case Quads:
		return "quads"
	default:
		return "none"
	}
}

var grammars = []struct {
	g  Grammar
	re *regexp.Regexp
}{
	{Bare, regexp.MustCompile(`^[0-9a-fA-F]{12}$`)},
	{Pairs, regexp.MustCompile(`^([0-9a-fA-F]{2}[:\-.]){5}[0-9a-fA-F]{2}$`)},
	{Quads, regexp.MustCompile(`^([0-9a-fA-F]{4}[.]){2}[0-9a-fA-F]{4}$`)},
}

// Match reports the first grammar s satisfies, checked in the order
// Bare, Pairs, Quads.
func Match(s string) (Grammar, bool) {
	for _, m := range grammars {
		if m.re.MatchString(s) {
			return m.g, true
		}
	}
	return 0, false
}

// Valid reports whether s is an accepted MAC address notation.
func Valid(s string) bool {
	_, ok := Match(s)
	return ok
}
