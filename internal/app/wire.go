package app

import (
	"github.com/rs/zerolog"

	"macconv/internal/domain"
	"macconv/internal/services/convert"
)

// Wire bundles the logger and services for the CLI.
type Wire struct {
	Log       zerolog.Logger
	Converter domain.Converter
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	log := NewLogger(cfg.LogOut, cfg.Debug)
	return &Wire{
		Log:       log,
		Converter: convert.New(log),
	}
}
