package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"github.com/thatkingore/mathematical-modelling/internal/infra/logger"
	"github.com/thatkingore/mathematical-modelling/internal/ports"
)

// EstimateJug loads a jug profile and computes its volume estimates.
type EstimateJug struct {
	jugs  ports.JugLoader
	store ports.ReportStore
	now   func() time.Time
}

// NewEstimateJug builds the use case. store may be nil to skip persistence.
func NewEstimateJug(jugs ports.JugLoader, store ports.ReportStore) *EstimateJug {
	return &EstimateJug{jugs: jugs, store: store, now: time.Now}
}

// Execute returns the report and, when a store is configured, the saved report id.
func (uc *EstimateJug) Execute(ctx context.Context, jugPath string, slices int) (domain.VolumeReport, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.VolumeReport{}, "", err
	}

	jug, err := uc.jugs.LoadJug(jugPath)
	if err != nil {
		return domain.VolumeReport{}, "", err
	}

	report, err := estimate(jug, slices)
	if err != nil {
		return domain.VolumeReport{}, "", err
	}
	report.JugPath = jugPath
	report.CreatedAt = uc.now().UTC()

	logger.For("usecase.estimate_jug").Info("jug.estimated",
		"jug", report.JugName,
		"slices", report.Slices,
		"adjusted", report.Adjusted,
		"sliced", report.Sliced,
	)

	id, err := save(ctx, uc.store, report)
	return report, id, err
}

// Slice breaks the pair-th segment of a jug into count slices.
func (uc *EstimateJug) Slice(ctx context.Context, jugPath string, pair, count int) (domain.SliceReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.SliceReport{}, err
	}

	jug, err := uc.jugs.LoadJug(jugPath)
	if err != nil {
		return domain.SliceReport{}, err
	}
	if pair < 0 || pair >= len(jug.Bands)-1 {
		return domain.SliceReport{}, &domain.OpError{
			Op:   "usecase.slice",
			Kind: domain.KindInvalidArgument,
			Path: jugPath,
			Err:  fmt.Errorf("pair %d out of range [0,%d): %w", pair, len(jug.Bands)-1, domain.ErrInvalidArgument),
		}
	}

	current, next := jug.Bands[pair], jug.Bands[pair+1]
	cut, err := domain.Sliced(current, next, count)
	if err != nil {
		return domain.SliceReport{}, err
	}
	adjusted, err := domain.VolumeAdjusted(current, next)
	if err != nil {
		return domain.SliceReport{}, err
	}
	sliced, err := domain.JugVolume(cut)
	if err != nil {
		return domain.SliceReport{}, err
	}

	return domain.SliceReport{
		JugName:  jug.Name,
		Pair:     pair,
		Current:  current,
		Next:     next,
		Slices:   cut,
		Adjusted: adjusted,
		Sliced:   sliced,
	}, nil
}

// EstimateBands runs the same computation for bands that did not come from a jug file.
type EstimateBands struct {
	store ports.ReportStore
	now   func() time.Time
}

func NewEstimateBands(store ports.ReportStore) *EstimateBands {
	return &EstimateBands{store: store, now: time.Now}
}

// Execute estimates jug. source names where the bands came from, such as a JSON file.
func (uc *EstimateBands) Execute(ctx context.Context, jug domain.Jug, source string, slices int) (domain.VolumeReport, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.VolumeReport{}, "", err
	}

	report, err := estimate(jug, slices)
	if err != nil {
		return domain.VolumeReport{}, "", err
	}
	report.JugPath = source
	report.CreatedAt = uc.now().UTC()

	logger.For("usecase.estimate_bands").Info("bands.estimated", "name", jug.Name, "bands", len(jug.Bands), "adjusted", report.Adjusted)

	id, err := save(ctx, uc.store, report)
	return report, id, err
}

func estimate(jug domain.Jug, slices int) (domain.VolumeReport, error) {
	adjusted, err := domain.JugVolume(jug.Bands)
	if err != nil {
		return domain.VolumeReport{}, err
	}
	sliced, err := domain.JugVolumeSliced(jug.Bands, slices)
	if err != nil {
		return domain.VolumeReport{}, err
	}
	segments, err := domain.Segments(jug.Bands)
	if err != nil {
		return domain.VolumeReport{}, err
	}

	bands := make([]domain.Cylinder, len(jug.Bands))
	copy(bands, jug.Bands)

	return domain.VolumeReport{
		JugName:        jug.Name,
		Bands:          bands,
		Slices:         slices,
		Unadjusted:     domain.UnadjustedVolume(jug.Bands),
		Adjusted:       adjusted,
		Sliced:         sliced,
		Segments:       segments,
		MeasuredVolume: jug.MeasuredVolume,
	}, nil
}

func save(ctx context.Context, store ports.ReportStore, report domain.VolumeReport) (string, error) {
	if store == nil {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, err := store.SaveReport(report)
	if err != nil {
		logger.For("reportstore").Error("report.save_failed", "jug", report.JugName, "err", err)
		return "", err
	}
	logger.For("reportstore").Info("report.saved", "id", id, "jug", report.JugName)
	return id, nil
}
