package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
)

// FuelReport computes the fuel requirement for every module in a mass
// manifest and writes one diagnostic line per module followed by the total.
type FuelReport struct {
	source ports.InputSource

	// SumOnly suppresses the per-module diagnostic lines.
	SumOnly bool
}

func NewFuelReport(src ports.InputSource) *FuelReport {
	return &FuelReport{source: src}
}

// Execute reads the manifest at path and writes the report to w.
//
// Diagnostic lines keep the historical trace format:
//
//	<n> --(//3)-> <n//3> --(-2)-> <n//3-2> [get_fuel: <fuel>]
//
// The final line contains only the total. On a read or parse error nothing is
// written, so a failed run never prints a sum line.
func (uc *FuelReport) Execute(ctx context.Context, path string, w io.Writer) (domain.Mass, error) {
	masses, err := uc.source.Masses(path)
	if err != nil {
		return 0, err
	}

	var total domain.Mass
	for _, m := range masses {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fuel := domain.Fuel(m)
		total += fuel

		if uc.SumOnly {
			continue
		}
		_, err := fmt.Fprintf(w, "%d --(//3)-> %d --(-2)-> %d [get_fuel: %d]\n",
			m, m/3, domain.DirectFuel(m), fuel)
		if err != nil {
			return 0, err
		}
	}

	if _, err := fmt.Fprintf(w, "%d\n", total); err != nil {
		return 0, err
	}
	return total, nil
}
