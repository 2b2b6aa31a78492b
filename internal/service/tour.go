package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
	"github.com/AnaMorales4/BackColombiaTour/internal/service/ports"
	"github.com/google/uuid"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type TourService struct {
	repo  ports.TourRepo
	cache ports.TourListCache
}

func NewTourService(repo ports.TourRepo, cache ports.TourListCache) *TourService {
	return &TourService{
		repo:  repo,
		cache: cache,
	}
}

func (s *TourService) Create(ctx context.Context, input domain.CreateTourInput) (*domain.Tour, error) {
	if input.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if err := validateTourFields(&input.Description, &input.Price, &input.Capacity); err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now().UTC()
	tour := &domain.Tour{
		ID:          uuid.New().String(),
		Destination: input.Destination,
		Description: input.Description,
		Price:       input.Price,
		Capacity:    input.Capacity,
		Active:      active,
		TourDate:    input.TourDate,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	s.cache.Invalidate(ctx)

	return tour, nil
}

func (s *TourService) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TourService) Update(ctx context.Context, id string, input domain.UpdateTourInput) (*domain.Tour, error) {
	if input.Destination != nil && *input.Destination == "" {
		return nil, fmt.Errorf("%w: destination cannot be empty", domain.ErrValidation)
	}
	if err := validateTourFields(input.Description, input.Price, input.Capacity); err != nil {
		return nil, err
	}

	tour, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}

	s.cache.Invalidate(ctx)

	return tour, nil
}

func (s *TourService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}

	s.cache.Invalidate(ctx)

	return nil
}

func (s *TourService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("set tour active: %w", err)
	}

	s.cache.Invalidate(ctx)

	return nil
}

// List serves the catalog read side, going through the page cache when the
// same filter was served recently. Cached pages are invalidated by every
// catalog and ledger mutation, so a hit always reflects committed state.
func (s *TourService) List(ctx context.Context, f domain.TourFilter) (*domain.TourPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}

	key := s.cache.Key(ctx, f)
	if payload, ok := s.cache.Get(ctx, key); ok {
		var page domain.TourPage
		if err := json.Unmarshal(payload, &page); err == nil {
			return &page, nil
		}
	}

	tours, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}

	page := &domain.TourPage{
		Tours:      tours,
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: (total + int64(f.Limit) - 1) / int64(f.Limit),
	}

	if payload, err := json.Marshal(page); err == nil {
		s.cache.Set(ctx, key, payload)
	}

	return page, nil
}

func validateTourFields(description *string, price *int64, capacity *int) error {
	if description != nil && utf8.RuneCountInString(*description) > domain.MaxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, domain.MaxDescriptionLen)
	}
	if price != nil && *price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	if capacity != nil && *capacity < 0 {
		return fmt.Errorf("%w: capacity cannot be negative", domain.ErrValidation)
	}

	return nil
}
