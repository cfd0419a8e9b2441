package ports

import "github.com/aalvaropc/astra/internal/domain"

// RunStore persists solve records for reproducibility.
type RunStore interface {
	SaveRun(rec domain.RunRecord) (id string, err error)
}
