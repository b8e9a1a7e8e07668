package domain

// Converter validates a MAC address and renders it in the requested notations.
type Converter interface {
	Convert(input string, f Format) ([]string, error)
}
