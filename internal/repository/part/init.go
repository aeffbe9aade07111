package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/rocket-maintenance/autoparts/internal/model"
)

type BatchCreator interface {
	CreateBatch(ctx context.Context, parts []model.Part) error
}

// PartsBootstrap fills an empty store with a demo catalogue.
func PartsBootstrap(ctx context.Context, c BatchCreator) error {
	now := time.Now()

	parts := []model.Part{
		&model.ElectricalPart{
			PartInfo: model.PartInfo{
				ID:            uuid.NewString(),
				Name:          "Batería AGM 70Ah",
				Price:         189.90,
				StockQuantity: 8,
				CreatedAt:     lo.ToPtr(now),
			},
			Voltage: 12,
		},
		&model.ElectricalPart{
			PartInfo: model.PartInfo{
				ID:            uuid.NewString(),
				Name:          "Alternador 90A",
				Price:         245.00,
				StockQuantity: 3,
				CreatedAt:     lo.ToPtr(now),
			},
			Voltage: 14.4,
		},
		&model.MechanicalPart{
			PartInfo: model.PartInfo{
				ID:            uuid.NewString(),
				Name:          "Disco de freno ventilado",
				Price:         64.50,
				StockQuantity: 12,
				CreatedAt:     lo.ToPtr(now),
			},
			Weight: 7.2,
		},
		&model.MechanicalPart{
			PartInfo: model.PartInfo{
				ID:            uuid.NewString(),
				Name:          "Filtro de aceite",
				Price:         9.75,
				StockQuantity: 40,
				CreatedAt:     lo.ToPtr(now),
			},
			Weight: 0.35,
		},
	}

	return c.CreateBatch(ctx, parts)
}
