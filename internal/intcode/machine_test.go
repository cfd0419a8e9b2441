package intcode

import (
	"errors"
	"testing"
)

func runToHalt(t *testing.T, program []int64, input ...int64) *Machine {
	t.Helper()
	m := New(program)
	m.Push(input...)
	state, err := m.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if state != Halted {
		t.Fatalf("expected Halted, got %v", state)
	}
	return m
}

func TestRun_AddAndMultiply(t *testing.T) {
	// Position-mode add/mul program: ends with 3500 at position 0.
	m := runToHalt(t, []int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50})
	if got := m.Get(0); got != 3500 {
		t.Fatalf("expected 3500 at position 0, got %d", got)
	}
}

func TestRun_ImmediateMode(t *testing.T) {
	// 1002,4,3,4,33: multiplies 33 by 3 and stores 99 at position 4.
	m := runToHalt(t, []int64{1002, 4, 3, 4, 33})
	if got := m.Get(4); got != 99 {
		t.Fatalf("expected 99 at position 4, got %d", got)
	}
}

func TestRun_EqualsAndLessThan(t *testing.T) {
	equalsEight := []int64{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}
	lessThanEight := []int64{3, 9, 7, 9, 10, 9, 4, 9, 99, -1, 8}

	cases := []struct {
		name    string
		program []int64
		input   int64
		want    int64
	}{
		{"equals hit", equalsEight, 8, 1},
		{"equals miss", equalsEight, 7, 0},
		{"less-than hit", lessThanEight, 7, 1},
		{"less-than miss", lessThanEight, 9, 0},
	}

	for _, c := range cases {
		m := runToHalt(t, c.program, c.input)
		out := m.Drain()
		if len(out) != 1 || out[0] != c.want {
			t.Fatalf("%s: expected output [%d], got %v", c.name, c.want, out)
		}
	}
}

func TestRun_JumpNonZeroCheck(t *testing.T) {
	// Outputs 0 when input is 0, 1 otherwise (position mode jumps).
	program := []int64{3, 12, 6, 12, 15, 1, 13, 14, 13, 4, 13, 99, -1, 0, 1, 9}

	m := runToHalt(t, program, 0)
	if out := m.Drain(); len(out) != 1 || out[0] != 0 {
		t.Fatalf("input 0: expected [0], got %v", out)
	}

	m = runToHalt(t, program, 42)
	if out := m.Drain(); len(out) != 1 || out[0] != 1 {
		t.Fatalf("input 42: expected [1], got %v", out)
	}
}

func TestRun_LargerCompareProgram(t *testing.T) {
	// Outputs 999/1000/1001 for input below/equal/above 8.
	program := []int64{
		3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
		1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
		999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99,
	}

	cases := []struct {
		input int64
		want  int64
	}{{5, 999}, {8, 1000}, {77, 1001}}

	for _, c := range cases {
		m := runToHalt(t, program, c.input)
		out := m.Drain()
		if len(out) != 1 || out[0] != c.want {
			t.Fatalf("input %d: expected [%d], got %v", c.input, c.want, out)
		}
	}
}

func TestRun_RelativeModeQuine(t *testing.T) {
	program := []int64{
		109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99,
	}

	m := runToHalt(t, program)
	out := m.Drain()
	if len(out) != len(program) {
		t.Fatalf("expected %d outputs, got %d", len(program), len(out))
	}
	for i := range program {
		if out[i] != program[i] {
			t.Fatalf("output %d: expected %d, got %d", i, program[i], out[i])
		}
	}
}

func TestRun_LargeNumbers(t *testing.T) {
	m := runToHalt(t, []int64{1102, 34915192, 34915192, 7, 4, 7, 99, 0})
	out := m.Drain()
	if len(out) != 1 || out[0] != 1219070632396864 {
		t.Fatalf("expected [1219070632396864], got %v", out)
	}

	m = runToHalt(t, []int64{104, 1125899906842624, 99})
	out = m.Drain()
	if len(out) != 1 || out[0] != 1125899906842624 {
		t.Fatalf("expected [1125899906842624], got %v", out)
	}
}

func TestRun_PausesOnEmptyInput(t *testing.T) {
	m := New([]int64{3, 0, 4, 0, 99})

	state, err := m.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if state != AwaitingInput {
		t.Fatalf("expected AwaitingInput, got %v", state)
	}

	m.Push(7)
	state, err = m.Run()
	if err != nil {
		t.Fatalf("resume error: %v", err)
	}
	if state != Halted {
		t.Fatalf("expected Halted after resume, got %v", state)
	}
	if out := m.Drain(); len(out) != 1 || out[0] != 7 {
		t.Fatalf("expected echoed [7], got %v", out)
	}
}

func TestRun_InvalidOpcode(t *testing.T) {
	m := New([]int64{42})
	if _, err := m.Run(); !errors.Is(err, ErrInvalidOpcode) {
		t.Fatalf("expected ErrInvalidOpcode, got %v", err)
	}
}

func TestRun_RejectsImmediateWrite(t *testing.T) {
	// 10001: add with immediate destination parameter.
	m := New([]int64{10001, 0, 0, 0, 99})
	if _, err := m.Run(); !errors.Is(err, ErrImmediateWrite) {
		t.Fatalf("expected ErrImmediateWrite, got %v", err)
	}
}

func TestRun_RejectsUnknownParameterMode(t *testing.T) {
	// 301: add with mode 3 on the first (read) parameter.
	m := New([]int64{301, 0, 0, 0, 99})
	if _, err := m.Run(); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode on read, got %v", err)
	}

	// 30001: add with mode 3 on the destination parameter.
	m = New([]int64{30001, 0, 0, 0, 99})
	if _, err := m.Run(); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode on write, got %v", err)
	}
}

func TestRun_HaltedMachineRefusesToRun(t *testing.T) {
	m := runToHalt(t, []int64{99})
	if _, err := m.Run(); !errors.Is(err, ErrHalted) {
		t.Fatalf("expected ErrHalted, got %v", err)
	}
}

func TestParseProgram(t *testing.T) {
	got, err := ParseProgram(" 1,0,-3, 99\n")
	if err != nil {
		t.Fatalf("ParseProgram error: %v", err)
	}
	want := []int64{1, 0, -3, 99}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if _, err := ParseProgram("1,oops,3"); err == nil {
		t.Fatalf("expected error for non-integer value")
	}
	if _, err := ParseProgram("  "); err == nil {
		t.Fatalf("expected error for empty program")
	}
}
