package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/infra/workspacefinder"
	"github.com/aalvaropc/astra/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenRunning
	screenReport
)

type dayItem struct {
	puzzle usecase.Puzzle
}

func (d dayItem) Title() string       { return fmt.Sprintf("Day %02d — %s", d.puzzle.Ref.Day, d.puzzle.Ref.Title) }
func (d dayItem) Description() string { return d.puzzle.Ref.InputFile }
func (d dayItem) FilterValue() string { return d.puzzle.Ref.Title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	cfg            domain.Config
	workspaceFound bool
	workspaceRoot  string

	activeTitle string
	report      string
	runErr      error
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := make([]list.Item, 0, len(usecase.Registry()))
	for _, p := range usecase.Registry() {
		items = append(items, dayItem{puzzle: p})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Astra"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		cfg:   domain.DefaultConfig(),
	}

	wd, err := os.Getwd()
	if err == nil && deps.Locator != nil {
		root, findErr := deps.Locator.FindRoot(wd)
		if findErr == nil {
			m.workspaceFound = true
			m.workspaceRoot = root
			if cfg, cfgErr := workspacefinder.LoadConfig(root); cfgErr == nil {
				m.cfg = cfg
			}
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		return m, nil

	case solveDoneMsg:
		m.scr = screenReport
		m.activeTitle = fmt.Sprintf("Day %02d — %s", msg.day, msg.title)
		m.report = msg.report
		m.runErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "enter":
			if m.scr == screenHome {
				it, ok := m.menu.SelectedItem().(dayItem)
				if !ok {
					return m, nil
				}
				m.scr = screenRunning
				m.activeTitle = it.Title()
				root := ""
				if m.workspaceFound {
					root = m.workspaceRoot
				}
				return m, solveCmd(m.deps, m.cfg, root, it.puzzle)
			}

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Astra") + "\n" +
		m.theme.Subtitle.Render("Spacecraft puzzle workbench — fuel, intcode, orbits, and images") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nInputs are read from the current directory. Run `astra init` to create one.",
		)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenRunning:
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s", m.theme.Title.Render(m.activeTitle), "Running..."),
		)
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card)

	case screenReport:
		body := m.report
		if m.runErr != nil {
			body = m.theme.Error.Render(fmt.Sprintf("error: %v", m.runErr))
			if m.report != "" {
				body += "\n\n" + m.report
			}
		}
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.activeTitle),
				body,
				m.theme.Help.Render("esc/b back • q home"),
			),
		)
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
