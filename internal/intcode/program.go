package intcode

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseProgram parses a comma-separated intcode program. Whitespace around
// values is tolerated; empty input is an error.
func ParseProgram(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty program")
	}

	fields := strings.Split(s, ",")
	program := make([]int64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d %q: %w", i, f, err)
		}
		program = append(program, v)
	}
	return program, nil
}
