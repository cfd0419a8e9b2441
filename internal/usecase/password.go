package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
)

// Password counts container passwords within a range. A valid password has
// digits that never decrease left to right and contains at least one digit
// that appears exactly twice in a row.
type Password struct {
	source ports.InputSource
}

func NewPassword(src ports.InputSource) *Password {
	return &Password{source: src}
}

// Execute counts valid passwords in [min,max] and reports the count.
func (uc *Password) Execute(ctx context.Context, min, max uint64, w io.Writer) (uint64, error) {
	if min > max {
		return 0, &domain.OpError{
			Op:   "password.count",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("min %d exceeds max %d", min, max),
		}
	}

	var count uint64
	for v := min; v <= max; v++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if IsValidPassword(v) {
			count++
		}
	}

	fmt.Fprintf(w, "Number of possible passwords: %d\n", count)
	return count, nil
}

// ExecuteFromFile reads the range as a single "min-max" line.
func (uc *Password) ExecuteFromFile(ctx context.Context, path string, w io.Writer) (uint64, error) {
	min, max, err := uc.loadRange(path)
	if err != nil {
		return 0, err
	}
	return uc.Execute(ctx, min, max, w)
}

func (uc *Password) loadRange(path string) (uint64, uint64, error) {
	lines, err := uc.source.Lines(path)
	if err != nil {
		return 0, 0, err
	}
	if len(lines) != 1 {
		return 0, 0, &domain.OpError{
			Op:   "password.range",
			Kind: domain.KindParse,
			Path: path,
			Err:  fmt.Errorf("expected a single min-max line, got %d lines", len(lines)),
		}
	}

	parts := strings.SplitN(lines[0], "-", 2)
	if len(parts) != 2 {
		return 0, 0, &domain.OpError{
			Op:   "password.range",
			Kind: domain.KindParse,
			Path: path,
			Err:  fmt.Errorf("expected min-max, got %q", lines[0]),
		}
	}

	min, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, &domain.OpError{Op: "password.range", Kind: domain.KindParse, Path: path, Err: err}
	}
	max, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, &domain.OpError{Op: "password.range", Kind: domain.KindParse, Path: path, Err: err}
	}
	return min, max, nil
}

// IsValidPassword checks both digit rules for a candidate.
func IsValidPassword(v uint64) bool {
	return digitsNeverDecrease(v) && hasExactDouble(v)
}

// digitsNeverDecrease scans from the least significant digit: reading right
// to left the digits must never increase.
func digitsNeverDecrease(v uint64) bool {
	current := v % 10
	v /= 10
	for v > 0 {
		next := v % 10
		if next > current {
			return false
		}
		current = next
		v /= 10
	}
	return true
}

// hasExactDouble reports whether some digit run has length exactly two.
func hasExactDouble(v uint64) bool {
	current := v % 10
	v /= 10
	runLen := 1
	for v > 0 {
		next := v % 10
		if next == current {
			runLen++
		} else {
			if runLen == 2 {
				return true
			}
			runLen = 1
		}
		current = next
		v /= 10
	}
	return runLen == 2
}
