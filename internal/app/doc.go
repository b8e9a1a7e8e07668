// Package app wires application dependencies for the CLI.
//
// It builds the logger and the converter service from Config, exposing them
// via the Wire struct for commands to use.
package app
