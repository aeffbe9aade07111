package repository

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/you-humble/rocket-maintenance/autoparts/internal/model"
)

func EntityToModel(e *PartEntity) model.Part {
	if e == nil {
		return nil
	}
	return e.Part
}

func EntityFromModel(p model.Part) *PartEntity {
	if p == nil {
		return nil
	}
	return &PartEntity{
		Part:     p,
		NameNorm: normalizeName(p.Info().Name),
	}
}

// normalizeName folds case the Unicode way, so "BUJÍA" and "bujía" match.
func normalizeName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
