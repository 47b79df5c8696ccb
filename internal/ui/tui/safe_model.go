package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// maxPanics is how many panics in a row the browser survives before quitting.
const maxPanics = 3

// safeModel keeps the browser alive when rendering a dataset panics.
type safeModel struct {
	m      model
	log    *slog.Logger
	panics int
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s = s.recovered("tui.update", r)
			tm = s
			cmd = nil
			if s.panics >= maxPanics {
				cmd = tea.Quit
			}
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}
	s.panics = 0

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.recovered("tui.view", r)
			out = "Unexpected error (see logs)"
		}
	}()
	return s.m.View()
}

// recovered logs the panic with the dataset that was open and returns to the list.
func (s safeModel) recovered(where string, r any) safeModel {
	active := s.m.active
	s.log.Error("panic.recovered",
		"where", where,
		"screen", s.m.scr.String(),
		"kind", string(active.kind),
		"dataset", active.name,
		"path", active.path,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)

	s.panics++
	s.m = s.m.home()
	if active.name != "" {
		s.m.toast = fmt.Sprintf("Could not show %s %q (see logs)", active.kind, active.name)
	} else {
		s.m.toast = "Unexpected error (see logs)"
	}
	return s
}

var _ tea.Model = (*safeModel)(nil)
