package repository

import "github.com/you-humble/rocket-maintenance/autoparts/internal/model"

// PartEntity is a stored part with its precomputed lookup key.
type PartEntity struct {
	Part     model.Part
	NameNorm string
}
