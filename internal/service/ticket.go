package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
	"github.com/AnaMorales4/BackColombiaTour/internal/metrics"
	"github.com/AnaMorales4/BackColombiaTour/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// TicketService is the reservation ledger's entry point. The atomicity of the
// capacity decision lives in the repository transaction; this layer validates
// input, resolves the user, and keeps the read cache and metrics honest.
type TicketService struct {
	ticketRepo ports.TicketRepo
	userRepo   ports.UserRepo
	cache      ports.TourListCache
	logger     logger.Logger
}

func NewTicketService(
	ticketRepo ports.TicketRepo,
	userRepo ports.UserRepo,
	cache ports.TourListCache,
	logger logger.Logger,
) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (s *TicketService) Create(ctx context.Context, tourID, userID string, quantity int) (*domain.Ticket, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	ticket := &domain.Ticket{
		ID:          uuid.New().String(),
		TourID:      tourID,
		UserID:      userID,
		Quantity:    quantity,
		Status:      domain.TicketStatusCommitted,
		PurchasedAt: now,
		UpdatedAt:   now,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			metrics.CapacityRejections.Inc()
		}
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	metrics.TicketsCreated.Inc()
	s.cache.Invalidate(ctx)

	s.logger.Info("ticket committed",
		logger.String("ticket_id", ticket.ID),
		logger.String("tour_id", tourID),
		logger.String("user_id", userID),
		logger.Int("quantity", quantity),
		logger.Int64("total", ticket.Total),
	)

	return ticket, nil
}

func (s *TicketService) UpdateQuantity(ctx context.Context, id string, quantity int) (*domain.Ticket, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	ticket, err := s.ticketRepo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, domain.ErrCapacityExceeded) {
			metrics.CapacityRejections.Inc()
		}
		return nil, fmt.Errorf("update quantity: %w", err)
	}

	s.cache.Invalidate(ctx)

	s.logger.Info("ticket resized",
		logger.String("ticket_id", ticket.ID),
		logger.Int("quantity", ticket.Quantity),
		logger.Int64("total", ticket.Total),
	)

	return ticket, nil
}

func (s *TicketService) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.ticketRepo.GetByID(ctx, id)
}

func (s *TicketService) Cancel(ctx context.Context, id string) error {
	if err := s.ticketRepo.Cancel(ctx, id); err != nil {
		return fmt.Errorf("cancel ticket: %w", err)
	}

	metrics.TicketsCancelled.Inc()
	s.cache.Invalidate(ctx)

	s.logger.Info("ticket cancelled",
		logger.String("ticket_id", id),
	)

	return nil
}

func (s *TicketService) ListByUser(ctx context.Context, userID string) ([]*domain.TicketSummary, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	return s.ticketRepo.ListByUser(ctx, userID)
}

func (s *TicketService) ListByTour(ctx context.Context, tourID string) ([]*domain.Ticket, error) {
	return s.ticketRepo.ListByTour(ctx, tourID)
}
