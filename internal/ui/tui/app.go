package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHome screen = iota
	screenDetail
)

func (s screen) String() string {
	switch s {
	case screenHome:
		return "home"
	case screenDetail:
		return "detail"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

type datasetKind string

const (
	kindJug    datasetKind = "jug"
	kindPuzzle datasetKind = "puzzle"
)

type datasetItem struct {
	kind datasetKind
	name string
	path string
}

func (d datasetItem) Title() string { return d.name }
func (d datasetItem) Description() string {
	if d.kind == kindJug {
		return "jug · enter to estimate volume"
	}
	return "sudoku · enter to check"
}
func (d datasetItem) FilterValue() string { return d.name }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	loading bool
	active  datasetItem
	detail  string
	toast   string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Datasets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenHome,
		menu:    l,
		loading: true,
	}
}

func (m model) Init() tea.Cmd { return cmdLoadDatasets(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case datasetsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.items))
		for _, it := range msg.items {
			items = append(items, it)
		}
		return m, m.menu.SetItems(items)

	case jugEstimatedMsg:
		m.loading = false
		if msg.err != nil {
			m.detail = m.theme.Bad.Render(userMessage(msg.err))
			return m, nil
		}
		m.detail = renderVolume(m.theme, msg.report)
		return m, nil

	case puzzleCheckedMsg:
		m.loading = false
		if msg.err != nil {
			m.detail = m.theme.Bad.Render(userMessage(msg.err))
			return m, nil
		}
		m.detail = renderPuzzle(m.theme, msg.report)
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m = m.home()
			return m, nil

		case "enter":
			if m.scr == screenHome {
				it, ok := m.menu.SelectedItem().(datasetItem)
				if !ok {
					return m, nil
				}
				m.scr = screenDetail
				m.active = it
				m.detail = ""
				m.loading = true
				logf(m.deps).Debug("tui.open", "kind", string(it.kind), "path", it.path)
				if it.kind == kindJug {
					return m, cmdEstimateJug(m.deps, it.path)
				}
				return m, cmdCheckPuzzle(m.deps, it.path)
			}

		case "esc", "b":
			if m.scr != screenHome {
				m = m.home()
				return m, nil
			}

		case "r":
			if m.scr == screenHome {
				m.loading = true
				m.toast = ""
				return m, cmdLoadDatasets(m.deps)
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

func (m model) home() model {
	m.scr = screenHome
	m.active = datasetItem{}
	m.detail = ""
	m.loading = false
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("mathmod") + "\n" +
		m.theme.Subtitle.Render("jug volumes and Sudoku checks") + "\n"
	banner := m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.deps.Root))

	switch m.scr {
	case screenHome:
		body := m.menu.View()
		if m.loading {
			body = "Loading datasets…"
		}
		if m.toast != "" {
			body = m.theme.Bad.Render(m.toast) + "\n\n" + body
		}
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • r reload • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(body) + "\n" + help)

	case screenDetail:
		body := m.detail
		if m.loading {
			body = "Computing…"
		}
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(clampString(m.active.name, 40)),
				body,
				m.theme.Help.Render("esc/b back • q home"),
			),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func logf(deps Deps) *slog.Logger {
	if deps.Logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return deps.Logger
}
