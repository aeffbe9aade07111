package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/you-humble/rocket-maintenance/autoparts/internal/model"
	"github.com/you-humble/rocket-maintenance/autoparts/platform/logger"
)

type PartRepository interface {
	Add(ctx context.Context, p model.Part) error
	FirstByName(ctx context.Context, name string) (model.Part, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Part, error)
}

type service struct {
	repo PartRepository
}

func NewInventoryService(repo PartRepository) *service {
	return &service{repo: repo}
}

// AddPart stores p after every part already present. Duplicate names are allowed.
func (s *service) AddPart(ctx context.Context, p model.Part) error {
	const op = "inventory.service.AddPart"

	if err := s.repo.Add(ctx, p); err != nil {
		logger.Error(ctx, "repository add part", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	info := p.Info()
	fields := []logger.Field{
		logger.String("part_id", info.ID),
		logger.String("part_name", info.Name),
		logger.String("category", p.Category().String()),
	}
	if info.CreatedAt != nil {
		fields = append(fields, logger.Time("created_at", *info.CreatedAt))
	}
	logger.Info(ctx, "part added", fields...)
	return nil
}

// SearchPart returns the first part whose name matches ignoring case.
func (s *service) SearchPart(ctx context.Context, name string) (model.Part, error) {
	const op = "inventory.service.SearchPart"
	log := logger.With(
		logger.String("part_name", name),
	)

	p, err := s.repo.FirstByName(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrPartNotFound) {
			log.Debug(ctx, "part not found")
		} else {
			log.Error(ctx, "repository first by name", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// RemovePart deletes the part SearchPart would return and hands it back.
// Later parts with the same name stay in the inventory.
func (s *service) RemovePart(ctx context.Context, name string) (model.Part, error) {
	const op = "inventory.service.RemovePart"
	log := logger.With(
		logger.String("part_name", name),
	)

	p, err := s.SearchPart(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	id := p.Info().ID
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.Error(ctx, "repository delete by id", logger.String("part_id", id), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "part removed", logger.String("part_id", id))
	return p, nil
}

func (s *service) ListParts(ctx context.Context) ([]model.Part, error) {
	const op = "inventory.service.ListParts"

	out, err := s.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// TotalValue sums price times quantity over every part in stock.
func (s *service) TotalValue(ctx context.Context) (float64, error) {
	const op = "inventory.service.TotalValue"

	parts, err := s.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	total := lo.SumBy(parts, func(p model.Part) float64 {
		return p.Value()
	})
	logger.Debug(ctx, "inventory value computed",
		logger.Int("parts_count", len(parts)),
		logger.Float64("total", total),
	)

	return total, nil
}
