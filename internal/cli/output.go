package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/thatkingore/mathematical-modelling/internal/app/template"
	"github.com/thatkingore/mathematical-modelling/internal/domain"
)

func printVolume(w io.Writer, r domain.VolumeReport, reportID, format, tmpl string) error {
	switch format {
	case "json":
		payload := map[string]any{
			"report_id": reportID,
			"report":    r,
		}
		return writeJSON(w, payload)
	case "line":
		return printLine(w, tmpl, template.DefaultVolumeLine, template.VolumeVars(r))
	case "pretty", "":
		printPrettyVolume(w, r, reportID)
		return nil
	default:
		return unsupportedFormat(format, "pretty|json|line")
	}
}

func printPrettyVolume(w io.Writer, r domain.VolumeReport, reportID string) {
	fmt.Fprintf(w, "Jug:        %s\n", r.JugName)
	if r.JugPath != "" {
		fmt.Fprintf(w, "Source:     %s\n", r.JugPath)
	}
	fmt.Fprintf(w, "Bands:      %d\n", len(r.Bands))
	if !r.CreatedAt.IsZero() {
		fmt.Fprintf(w, "Computed:   %s\n", r.CreatedAt.Format(time.RFC3339))
	}
	if reportID != "" {
		fmt.Fprintf(w, "Report ID:  %s\n", reportID)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "pair\tcircumference\tslant\tvertical\tmean circ.\tvolume\t")
	for _, s := range r.Segments {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.4f\t%.2f\t%.3f\t\n",
			s.Index, s.Current.Circumference, s.Current.Height, s.Adjusted.Height, s.Adjusted.Circumference, s.Volume)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Unadjusted: %.3f\n", r.Unadjusted)
	fmt.Fprintf(w, "Adjusted:   %.3f\n", r.Adjusted)
	fmt.Fprintf(w, "Sliced:     %.3f (%d slices per pair)\n", r.Sliced, r.Slices)
	if rel, ok := r.RelativeError(); ok {
		fmt.Fprintf(w, "Measured:   %.3f (adjusted off by %.1f%%)\n", r.MeasuredVolume, rel*100)
	}
}

func printSlices(w io.Writer, r domain.SliceReport, format string) error {
	switch format {
	case "json":
		return writeJSON(w, r)
	case "pretty", "":
		fmt.Fprintf(w, "Jug:   %s\n", r.JugName)
		fmt.Fprintf(w, "Pair:  %d (%.2f, %.2f) -> (%.2f, %.2f)\n\n",
			r.Pair, r.Current.Circumference, r.Current.Height, r.Next.Circumference, r.Next.Height)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "slice\tcircumference\tradius\theight\t")
		for i, c := range r.Slices {
			fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t\n", i, c.Circumference, c.Radius(), c.Height)
		}
		_ = tw.Flush()
		fmt.Fprintln(w)

		fmt.Fprintf(w, "Adjusted: %.3f\n", r.Adjusted)
		fmt.Fprintf(w, "Sliced:   %.3f\n", r.Sliced)
		return nil
	default:
		return unsupportedFormat(format, "pretty|json")
	}
}

func printPuzzle(w io.Writer, r domain.PuzzleReport, format, tmpl string) error {
	switch format {
	case "json":
		return writeJSON(w, r)
	case "line":
		return printLine(w, tmpl, template.DefaultPuzzleLine, template.PuzzleVars(r))
	case "pretty", "":
		fmt.Fprintf(w, "Puzzle: %s\n", r.Name)
		fmt.Fprintf(w, "Filled: %d/81\n\n", r.Filled)
		fmt.Fprint(w, r.Rendered)
		fmt.Fprintln(w)

		if r.Valid {
			fmt.Fprintln(w, "✓ valid")
			return nil
		}
		fmt.Fprintln(w, "✗ invalid")
		for _, c := range r.Conflicts {
			fmt.Fprintf(w, "  %s %d: %s\n", c.Unit, c.Index, formatPart(c.Part))
		}
		return nil
	default:
		return unsupportedFormat(format, "pretty|json|line")
	}
}

func printComparison(w io.Writer, r domain.FractionComparison, format string) error {
	switch format {
	case "json":
		return writeJSON(w, r)
	case "pretty", "":
		fmt.Fprintf(w, "%s %s %s\n", r.LeftText, r.Relation, r.RightText)
		return nil
	default:
		return unsupportedFormat(format, "pretty|json")
	}
}

func printLine(w io.Writer, tmpl, fallback string, vars map[string]string) error {
	if strings.TrimSpace(tmpl) == "" {
		tmpl = fallback
	}
	out, err := template.RenderString(tmpl, vars)
	if err != nil {
		return fmt.Errorf("%w (fields: %s)", err, strings.Join(template.Keys(vars), ", "))
	}
	fmt.Fprintln(w, out)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatPart(p domain.Part) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

func unsupportedFormat(format, allowed string) error {
	return &domain.OpError{
		Op:   "cli.format",
		Kind: domain.KindInvalidArgument,
		Err:  fmt.Errorf("unsupported format %q (expected %s): %w", format, allowed, domain.ErrInvalidArgument),
	}
}
