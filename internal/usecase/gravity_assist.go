package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/intcode"
	"github.com/aalvaropc/astra/internal/ports"
)

// GravityAssist restores and runs the gravity assist program: the intcode
// tape is patched with a noun at position 1 and a verb at position 2, run to
// completion, and the value left at position 0 is the result.
type GravityAssist struct {
	source ports.InputSource
}

func NewGravityAssist(src ports.InputSource) *GravityAssist {
	return &GravityAssist{source: src}
}

// Execute runs the program with the given patch and reports position 0.
func (uc *GravityAssist) Execute(ctx context.Context, path string, noun, verb int64, w io.Writer) (int64, error) {
	program, err := uc.source.Program(path)
	if err != nil {
		return 0, err
	}

	result, err := runPatched(program, noun, verb)
	if err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "Left in position 0: %d\n", result)
	return result, nil
}

// Search scans nouns and verbs in [0,99] for the patch producing target and
// reports 100*noun+verb.
func (uc *GravityAssist) Search(ctx context.Context, path string, target int64, w io.Writer) (int64, error) {
	program, err := uc.source.Program(path)
	if err != nil {
		return 0, err
	}

	for noun := int64(0); noun < 100; noun++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for verb := int64(0); verb < 100; verb++ {
			result, err := runPatched(program, noun, verb)
			if err != nil {
				return 0, err
			}
			if result == target {
				code := 100*noun + verb
				fmt.Fprintf(w, "Found: %d\n", code)
				return code, nil
			}
		}
	}

	return 0, &domain.OpError{
		Op:   "gravity.search",
		Kind: domain.KindExecution,
		Path: path,
		Err:  fmt.Errorf("no noun/verb pair produces %d", target),
	}
}

func runPatched(program []int64, noun, verb int64) (int64, error) {
	m := intcode.New(program)
	m.Set(1, noun)
	m.Set(2, verb)

	state, err := m.Run()
	if err != nil {
		return 0, &domain.OpError{Op: "gravity.run", Kind: domain.KindExecution, Err: err}
	}
	if state != intcode.Halted {
		return 0, &domain.OpError{
			Op:   "gravity.run",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("program paused for input"),
		}
	}
	return m.Get(0), nil
}
