package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
)

// Puzzle is one runnable entry in the workbench.
type Puzzle struct {
	Ref domain.PuzzleRef

	// Run solves the puzzle with its default parameters against the input
	// at path and writes the report to w.
	Run func(ctx context.Context, src ports.InputSource, cfg domain.Config, path string, w io.Writer) error
}

// Registry lists the implemented puzzles in day order.
func Registry() []Puzzle {
	return []Puzzle{
		{
			Ref: domain.PuzzleRef{Day: 1, Title: "The Tyranny of the Rocket Equation", InputFile: "input_01.txt"},
			Run: func(ctx context.Context, src ports.InputSource, _ domain.Config, path string, w io.Writer) error {
				_, err := NewFuelReport(src).Execute(ctx, path, w)
				return err
			},
		},
		{
			Ref: domain.PuzzleRef{Day: 2, Title: "1202 Program Alarm", InputFile: "input_02.txt"},
			Run: func(ctx context.Context, src ports.InputSource, _ domain.Config, path string, w io.Writer) error {
				uc := NewGravityAssist(src)
				if _, err := uc.Execute(ctx, path, 12, 2, w); err != nil {
					return err
				}
				_, err := uc.Search(ctx, path, 19690720, w)
				return err
			},
		},
		{
			Ref: domain.PuzzleRef{Day: 4, Title: "Secure Container", InputFile: "input_04.txt"},
			Run: func(ctx context.Context, src ports.InputSource, _ domain.Config, path string, w io.Writer) error {
				_, err := NewPassword(src).ExecuteFromFile(ctx, path, w)
				return err
			},
		},
		{
			Ref: domain.PuzzleRef{Day: 5, Title: "Sunny with a Chance of Asteroids", InputFile: "input_05.txt"},
			Run: func(ctx context.Context, src ports.InputSource, cfg domain.Config, path string, w io.Writer) error {
				_, err := NewDiagnostic(src).Execute(ctx, path, cfg.Defaults.DiagnosticID, w)
				return err
			},
		},
		{
			Ref: domain.PuzzleRef{Day: 6, Title: "Universal Orbit Map", InputFile: "input_06.txt"},
			Run: func(ctx context.Context, src ports.InputSource, _ domain.Config, path string, w io.Writer) error {
				return NewOrbits(src).Execute(ctx, path, w)
			},
		},
		{
			Ref: domain.PuzzleRef{Day: 8, Title: "Space Image Format", InputFile: "input_08.txt"},
			Run: func(ctx context.Context, src ports.InputSource, cfg domain.Config, path string, w io.Writer) error {
				return NewImage(src).Execute(ctx, path, cfg.Defaults.ImageWidth, cfg.Defaults.ImageHeight, w)
			},
		},
	}
}

// Lookup finds a puzzle by day.
func Lookup(day int) (Puzzle, error) {
	for _, p := range Registry() {
		if p.Ref.Day == day {
			return p, nil
		}
	}
	return Puzzle{}, &domain.OpError{
		Op:   "registry.lookup",
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("day %d not implemented", day),
	}
}
