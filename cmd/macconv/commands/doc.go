// Package commands defines the macconv CLI.
//
// Usage
//
//	macconv [flags] <mac>
//
// Flags
//
//   - -d, --dashed   Output in dashed notation (aa-bb-cc-dd-ee-ff)
//   - -c, --colon    Output in colon notation (aa:bb:cc:dd:ee:ff)
//   - -w, --cisco    Output in Cisco notation (aabb.ccdd.eeff)
//   - -C, --caps     Use capital hex digits
//   - --debug        Log parse details to stderr
//
// Colon notation is printed when no notation flag is given. Several notation
// flags may be combined; lines are printed Cisco, colon, then dashed.
//
// # Exit status
//
//	0    success
//	1    usage error (missing argument, unknown flag)
//	201  the argument is not a valid MAC address
package commands
