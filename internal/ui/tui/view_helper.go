package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderVolume(t Theme, r domain.VolumeReport) string {
	var b strings.Builder

	b.WriteString("Segments:\n")
	for _, s := range r.Segments {
		b.WriteString(fmt.Sprintf("  %d  c=%6.2f  slant=%5.2f  vertical=%7.4f  %10.3f\n",
			s.Index, s.Current.Circumference, s.Current.Height, s.Adjusted.Height, s.Volume))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Unadjusted: %.3f\n", r.Unadjusted))
	b.WriteString(t.Title.Render(fmt.Sprintf("Adjusted:   %.3f", r.Adjusted)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Sliced:     %.3f (%d slices)\n", r.Sliced, r.Slices))

	if rel, ok := r.RelativeError(); ok {
		b.WriteString(fmt.Sprintf("Measured:   %.3f (%.1f%% off)\n", r.MeasuredVolume, rel*100))
	}
	return b.String()
}

func renderPuzzle(t Theme, r domain.PuzzleReport) string {
	var b strings.Builder

	b.WriteString(r.Rendered)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Filled: %d/81\n", r.Filled))

	if r.Valid {
		b.WriteString(t.Good.Render("✓ valid"))
		return b.String()
	}

	b.WriteString(t.Bad.Render("✗ invalid"))
	b.WriteString("\n")
	for _, c := range r.Conflicts {
		b.WriteString(fmt.Sprintf("  - %s %d\n", c.Unit, c.Index))
	}
	return b.String()
}
