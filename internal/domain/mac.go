package domain

import "fmt"

// MACAddressLen is the number of octets in a MAC address.
const MACAddressLen = 6

// MACAddress is a 48-bit hardware address in transmission order.
type MACAddress [MACAddressLen]byte

// String returns the lowercase colon form, e.g. aa:bb:cc:dd:ee:ff.
func (m MACAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}
