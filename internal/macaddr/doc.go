// Package macaddr validates, decodes and renders textual MAC addresses.
//
// Accepted input
//
//   - Bare    twelve contiguous hex digits        aabbccddeeff
//   - Pairs   six two-digit groups, any of : - .  aa:bb-cc.dd:ee:ff
//   - Quads   three four-digit groups joined by . aabb.ccdd.eeff
//
// Hex digits are case-insensitive. Pairs accepts a different delimiter
// between each group; narrowing that would reject input older releases took.
//
// # Output
//
// Render produces colon, dashed or Cisco notation with two zero-padded hex
// digits per octet, lowercase unless caps is requested.
package macaddr
