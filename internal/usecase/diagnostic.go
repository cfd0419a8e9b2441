package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/intcode"
	"github.com/aalvaropc/astra/internal/ports"
)

// Diagnostic runs the ship computer self-test: the program is fed a single
// system ID and emits a sequence of test results followed by the diagnostic
// code. Every output before the last must be zero.
type Diagnostic struct {
	source ports.InputSource
}

func NewDiagnostic(src ports.InputSource) *Diagnostic {
	return &Diagnostic{source: src}
}

// Execute runs the self-test for systemID and returns the diagnostic code.
func (uc *Diagnostic) Execute(ctx context.Context, path string, systemID int64, w io.Writer) (int64, error) {
	program, err := uc.source.Program(path)
	if err != nil {
		return 0, err
	}

	m := intcode.New(program)
	m.Push(systemID)

	state, err := m.Run()
	if err != nil {
		return 0, &domain.OpError{Op: "diagnostic.run", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if state != intcode.Halted {
		return 0, &domain.OpError{
			Op:   "diagnostic.run",
			Kind: domain.KindExecution,
			Path: path,
			Err:  fmt.Errorf("program expects more than one input"),
		}
	}

	outputs := m.Drain()
	if len(outputs) == 0 {
		return 0, &domain.OpError{
			Op:   "diagnostic.run",
			Kind: domain.KindExecution,
			Path: path,
			Err:  fmt.Errorf("program produced no output"),
		}
	}

	for i, v := range outputs[:len(outputs)-1] {
		fmt.Fprintf(w, "test %d: %d\n", i+1, v)
		if v != 0 {
			return 0, &domain.OpError{
				Op:   "diagnostic.run",
				Kind: domain.KindExecution,
				Path: path,
				Err:  fmt.Errorf("self-test %d failed with %d", i+1, v),
			}
		}
	}

	code := outputs[len(outputs)-1]
	fmt.Fprintf(w, "diagnostic code: %d\n", code)
	return code, nil
}
