package ports

import "github.com/aalvaropc/astra/internal/domain"

// InputSource reads puzzle inputs from a source (e.g., filesystem).
//
// All methods return data in file order. A missing or unreadable file yields
// KindNotFound; malformed content yields KindParse.
type InputSource interface {
	// Masses reads one integer per line (the module mass manifest).
	Masses(path string) ([]domain.Mass, error)

	// Program reads a single comma-separated list of integers (intcode).
	Program(path string) ([]int64, error)

	// Lines reads trimmed, non-empty lines.
	Lines(path string) ([]string, error)

	// Digits reads one trimmed line of decimal digits.
	Digits(path string) ([]int, error)
}
