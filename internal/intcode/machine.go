// Package intcode implements the ship computer: an integer machine with
// position/immediate/relative parameter modes, growable memory, and queued
// input/output. Execution pauses when input is exhausted and can be resumed
// after more input is pushed.
package intcode

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOpcode  = errors.New("invalid opcode")
	ErrInvalidMode    = errors.New("invalid parameter mode")
	ErrNegativeAddr   = errors.New("negative address")
	ErrImmediateWrite = errors.New("write parameter cannot be immediate")
	ErrHalted         = errors.New("machine already halted")
)

// State reports why Run returned.
type State int

const (
	// Halted means the program executed opcode 99.
	Halted State = iota
	// AwaitingInput means an input instruction found the queue empty;
	// push input and call Run again to resume.
	AwaitingInput
)

const (
	opAdd         = 1
	opMul         = 2
	opInput       = 3
	opOutput      = 4
	opJumpIfTrue  = 5
	opJumpIfFalse = 6
	opLessThan    = 7
	opEquals      = 8
	opAdjustBase  = 9
	opHalt        = 99
)

const (
	modePosition  = 0
	modeImmediate = 1
	modeRelative  = 2
)

// Machine executes one intcode program. The zero value is not usable; use New.
type Machine struct {
	mem    []int64
	pc     int64
	base   int64
	input  []int64
	output []int64
	halted bool
}

// New creates a machine with its own copy of the program.
func New(program []int64) *Machine {
	mem := make([]int64, len(program))
	copy(mem, program)
	return &Machine{mem: mem}
}

// Push queues input values.
func (m *Machine) Push(values ...int64) {
	m.input = append(m.input, values...)
}

// Drain returns and clears the accumulated output.
func (m *Machine) Drain() []int64 {
	out := m.output
	m.output = nil
	return out
}

// Get reads a memory cell, growing as needed.
func (m *Machine) Get(addr int64) int64 {
	if addr < 0 {
		return 0
	}
	m.grow(addr)
	return m.mem[addr]
}

// Set writes a memory cell, growing as needed.
func (m *Machine) Set(addr, value int64) {
	if addr < 0 {
		return
	}
	m.grow(addr)
	m.mem[addr] = value
}

// Halted reports whether the program has executed its halt instruction.
func (m *Machine) Halted() bool { return m.halted }

func (m *Machine) grow(addr int64) {
	if addr < int64(len(m.mem)) {
		return
	}
	grown := make([]int64, addr+1)
	copy(grown, m.mem)
	m.mem = grown
}

// Run executes instructions until the program halts or starves for input.
func (m *Machine) Run() (State, error) {
	if m.halted {
		return Halted, ErrHalted
	}

	for {
		instr := m.Get(m.pc)
		op := instr % 100
		modes := instr / 100

		switch op {
		case opAdd, opMul, opLessThan, opEquals:
			a, err := m.read(1, modes)
			if err != nil {
				return Halted, err
			}
			b, err := m.read(2, modes)
			if err != nil {
				return Halted, err
			}
			dst, err := m.writeAddr(3, modes)
			if err != nil {
				return Halted, err
			}

			var v int64
			switch op {
			case opAdd:
				v = a + b
			case opMul:
				v = a * b
			case opLessThan:
				if a < b {
					v = 1
				}
			case opEquals:
				if a == b {
					v = 1
				}
			}
			m.Set(dst, v)
			m.pc += 4

		case opInput:
			if len(m.input) == 0 {
				return AwaitingInput, nil
			}
			dst, err := m.writeAddr(1, modes)
			if err != nil {
				return Halted, err
			}
			m.Set(dst, m.input[0])
			m.input = m.input[1:]
			m.pc += 2

		case opOutput:
			v, err := m.read(1, modes)
			if err != nil {
				return Halted, err
			}
			m.output = append(m.output, v)
			m.pc += 2

		case opJumpIfTrue, opJumpIfFalse:
			cond, err := m.read(1, modes)
			if err != nil {
				return Halted, err
			}
			target, err := m.read(2, modes)
			if err != nil {
				return Halted, err
			}
			if (op == opJumpIfTrue) == (cond != 0) {
				if target < 0 {
					return Halted, fmt.Errorf("jump to %d: %w", target, ErrNegativeAddr)
				}
				m.pc = target
			} else {
				m.pc += 3
			}

		case opAdjustBase:
			v, err := m.read(1, modes)
			if err != nil {
				return Halted, err
			}
			m.base += v
			m.pc += 2

		case opHalt:
			m.halted = true
			return Halted, nil

		default:
			return Halted, fmt.Errorf("opcode %d at position %d: %w", op, m.pc, ErrInvalidOpcode)
		}
	}
}

// read resolves the n-th parameter (1-based) of the current instruction.
func (m *Machine) read(n int, modes int64) (int64, error) {
	raw := m.Get(m.pc + int64(n))
	switch mode(n, modes) {
	case modePosition:
		if raw < 0 {
			return 0, fmt.Errorf("read at %d: %w", raw, ErrNegativeAddr)
		}
		return m.Get(raw), nil
	case modeImmediate:
		return raw, nil
	case modeRelative:
		addr := m.base + raw
		if addr < 0 {
			return 0, fmt.Errorf("read at %d: %w", addr, ErrNegativeAddr)
		}
		return m.Get(addr), nil
	default:
		return 0, fmt.Errorf("mode %d: %w", mode(n, modes), ErrInvalidMode)
	}
}

// writeAddr resolves the n-th parameter as a store target.
func (m *Machine) writeAddr(n int, modes int64) (int64, error) {
	raw := m.Get(m.pc + int64(n))
	var addr int64
	switch mode(n, modes) {
	case modePosition:
		addr = raw
	case modeRelative:
		addr = m.base + raw
	case modeImmediate:
		return 0, ErrImmediateWrite
	default:
		return 0, fmt.Errorf("mode %d: %w", mode(n, modes), ErrInvalidMode)
	}
	if addr < 0 {
		return 0, fmt.Errorf("write at %d: %w", addr, ErrNegativeAddr)
	}
	return addr, nil
}

func mode(n int, modes int64) int64 {
	for i := 1; i < n; i++ {
		modes /= 10
	}
	return modes % 10
}
