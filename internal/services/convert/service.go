package convert

import (
	"github.com/rs/zerolog"

	"macconv/internal/domain"
	"macconv/internal/macaddr"
)

// Service converts MAC addresses between notations.
type Service struct {
	log zerolog.Logger
}

// New returns a converter that writes debug records to log.
func New(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("component", "convert").Logger()}
}

// Convert parses input and returns one line per notation in f.Notations().
// Invalid input yields *domain.InvalidAddressError and no lines.
func (s *Service) Convert(input string, f domain.Format) ([]string, error) {
	g, ok := macaddr.Match(input)
	if !ok {
		s.log.Debug().Str("input", input).Msg("rejected")
		return nil, &domain.InvalidAddressError{Input: input}
	}

	mac, err := macaddr.Parse(input)
	if err != nil {
		return nil, err
	}

	notations := f.Notations()
	s.log.Debug().
		Str("input", input).
		Stringer("grammar", g).
		Stringer("mac", mac).
		Bool("caps", f.Caps).
		Int("renderings", len(notations)).
		Msg("parsed")

	lines := make([]string, 0, len(notations))
	for _, n := range notations {
		lines = append(lines, macaddr.Render(mac, n, f.Caps))
	}
	return lines, nil
}

var _ domain.Converter = (*Service)(nil)
