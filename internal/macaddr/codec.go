package macaddr

import (
	"encoding/hex"
	"fmt"
	"strings"

	"macconv/internal/domain"
)

var stripDelims = strings.NewReplacer("-", "", ":", "", ".", "")

// Parse validates s and decodes it into six octets.
// Input outside the accepted grammar yields *domain.InvalidAddressError.
func Parse(s string) (domain.MACAddress, error) {
	var mac domain.MACAddress
	if !Valid(s) {
		return mac, &domain.InvalidAddressError{Input: s}
	}

	digits := stripDelims.Replace(s)
	b, err := hex.DecodeString(digits)
	if err != nil || len(b) != domain.MACAddressLen {
		// unreachable once the grammar matched
		return mac, fmt.Errorf("decode %q: %w", s, &domain.InvalidAddressError{Input: s})
	}
	copy(mac[:], b)
	return mac, nil
}

// Render formats mac in notation n. Unknown notations render as colon.
func Render(mac domain.MACAddress, n domain.Notation, caps bool) string {
	verb := "%02x"
	if caps {
		verb = "%02X"
	}

	var b strings.Builder
	for i, o := range mac {
		if i > 0 {
			switch n {
			case domain.Cisco:
				if i%2 == 0 {
					b.WriteByte('.')
				}
			case domain.Dashed:
				b.WriteByte('-')
			default:
				b.WriteByte(':')
			}
		}
		fmt.Fprintf(&b, verb, o)
	}
	return b.String()
}
