// Package inputfs loads puzzle inputs from plain text files.
package inputfs

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/intcode"
	"github.com/aalvaropc/astra/internal/ports"
)

// Loader implements ports.InputSource against the local filesystem.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.InputSource = (*Loader)(nil)

// Masses reads one integer per line, in file order. Surrounding whitespace is
// tolerated; a non-integer line is a parse error.
func (l *Loader) Masses(path string) ([]domain.Mass, error) {
	var masses []domain.Mass

	err := l.scan("inputfs.masses", path, func(lineNo int, line string) error {
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return &domain.OpError{
				Op:   "inputfs.masses",
				Kind: domain.KindParse,
				Path: path,
				Line: lineNo,
				Err:  err,
			}
		}
		masses = append(masses, domain.Mass(v))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return masses, nil
}

// Program reads a comma-separated intcode program. The file may span several
// lines; they are joined before parsing.
func (l *Loader) Program(path string) ([]int64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "inputfs.program",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	program, err := intcode.ParseProgram(strings.ReplaceAll(string(b), "\n", ""))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "inputfs.program",
			Kind: domain.KindParse,
			Path: path,
			Err:  err,
		}
	}
	return program, nil
}

// Lines reads trimmed, non-empty lines in file order.
func (l *Loader) Lines(path string) ([]string, error) {
	var lines []string

	err := l.scan("inputfs.lines", path, func(_ int, line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Digits reads a single line of decimal digits.
func (l *Loader) Digits(path string) ([]int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "inputfs.digits",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	raw := strings.TrimSpace(string(b))
	digits := make([]int, 0, len(raw))
	for _, r := range raw {
		if r < '0' || r > '9' {
			return nil, &domain.OpError{
				Op:   "inputfs.digits",
				Kind: domain.KindParse,
				Path: path,
				Line: 1,
				Err:  &strconv.NumError{Func: "Digits", Num: string(r), Err: strconv.ErrSyntax},
			}
		}
		digits = append(digits, int(r-'0'))
	}
	return digits, nil
}

// scan opens the file and feeds trimmed, non-empty lines to fn. The handle is
// released on every path.
func (l *Loader) scan(op, path string, fn func(lineNo int, line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
