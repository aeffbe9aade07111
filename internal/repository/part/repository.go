package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/you-humble/rocket-maintenance/autoparts/internal/model"
)

// repository keeps parts in insertion order. It is owned by the single
// menu loop and does no locking.
type repository struct {
	parts []*PartEntity
}

func NewPartRepository() *repository {
	return &repository{}
}

func (r *repository) Add(_ context.Context, p model.Part) error {
	const op = "repository.Add"

	if p == nil {
		return fmt.Errorf("%s: %w: part is nil", op, model.ErrInvalidArgument)
	}
	if p.Info().ID == "" {
		return fmt.Errorf("%s: %w: part ID is empty", op, model.ErrInvalidArgument)
	}

	r.parts = append(r.parts, EntityFromModel(p))
	return nil
}

// FirstByName returns the earliest added part whose name matches ignoring case.
func (r *repository) FirstByName(_ context.Context, name string) (model.Part, error) {
	key := normalizeName(name)

	ent, ok := lo.Find(r.parts, func(e *PartEntity) bool {
		return e.NameNorm == key
	})
	if !ok {
		return nil, model.ErrPartNotFound
	}

	return EntityToModel(ent), nil
}

func (r *repository) DeleteByID(_ context.Context, id string) error {
	_, idx, ok := lo.FindIndexOf(r.parts, func(e *PartEntity) bool {
		return e.Part.Info().ID == id
	})
	if !ok {
		return model.ErrPartNotFound
	}

	r.parts = slices.Delete(r.parts, idx, idx+1)
	return nil
}

func (r *repository) List(_ context.Context) ([]model.Part, error) {
	return lo.Map(r.parts, func(e *PartEntity, _ int) model.Part {
		return EntityToModel(e)
	}), nil
}

func (r *repository) CreateBatch(ctx context.Context, parts []model.Part) error {
	const op = "repository.CreateBatch"

	for _, p := range parts {
		if p == nil {
			continue
		}
		if err := r.Add(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
