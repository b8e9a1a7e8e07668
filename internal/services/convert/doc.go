// Package convert runs the parse, validate and reformat pass for one address.
//
// It produces every requested rendering or none of them.
package convert
