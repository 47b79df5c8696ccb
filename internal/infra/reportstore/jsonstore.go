package reportstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"github.com/thatkingore/mathematical-modelling/internal/ports"
)

const defaultReportsDir = "reports"

type JSONStore struct {
	rootDir        string
	reportsDirName string
	writeIndex     bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	reportsDir := cfg.Paths.ReportsDir
	if strings.TrimSpace(reportsDir) == "" {
		reportsDir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		reportsDirName: reportsDir,
		writeIndex:     cfg.Reports.Index,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

func (s *JSONStore) SaveReport(report domain.VolumeReport) (string, error) {
	dir := filepath.Join(s.rootDir, s.reportsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := report.CreatedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := report
	toSave.CreatedAt = ts

	namePart := report.JugName
	if strings.TrimSpace(namePart) == "" {
		namePart = strings.TrimSuffix(filepath.Base(report.JugPath), filepath.Ext(report.JugPath))
	}
	slug := slugify(namePart)
	if slug == "" {
		slug = "report"
	}

	id := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)
	id = uniqueID(dir, id)
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, toSave)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, report domain.VolumeReport) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Jug       string    `json:"jug"`
		Slices    int       `json:"slices"`
		Adjusted  float64   `json:"adjusted"`
		Sliced    float64   `json:"sliced"`
		CreatedAt time.Time `json:"created_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Jug:       report.JugName,
		Slices:    report.Slices,
		Adjusted:  report.Adjusted,
		Sliced:    report.Sliced,
		CreatedAt: report.CreatedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// uniqueID appends _2, _3, ... until no report file with that id exists.
func uniqueID(dir, id string) string {
	candidate := id
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, candidate+".json")); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", id, n)
	}
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
