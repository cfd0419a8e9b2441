package tui

type solveDoneMsg struct {
	day    int
	title  string
	report string
	err    error
}
