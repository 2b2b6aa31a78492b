package ports

import (
	"context"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
)

type TourRepo interface {
	Create(ctx context.Context, t *domain.Tour) error
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	Update(ctx context.Context, id string, in domain.UpdateTourInput) (*domain.Tour, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	List(ctx context.Context, f domain.TourFilter) ([]*domain.TourWithRemaining, int64, error)
}
