package ports

import "github.com/thatkingore/mathematical-modelling/internal/domain"

// ReportStore persists volume reports so estimates can be compared later.
type ReportStore interface {
	SaveReport(report domain.VolumeReport) (id string, err error)
}
