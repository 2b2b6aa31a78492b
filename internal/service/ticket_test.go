package service

import (
	"context"
	"testing"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
	"github.com/AnaMorales4/BackColombiaTour/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTicketService(t *testing.T) (*mocks.MockTicketRepo, *mocks.MockUserRepo, *mocks.MockTourListCache, *TicketService) {
	t.Helper()
	ticketRepo := mocks.NewMockTicketRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	cache := mocks.NewMockTourListCache(t)
	svc := NewTicketService(ticketRepo, userRepo, cache, newTestLogger(t))
	return ticketRepo, userRepo, cache, svc
}

func TestTicketService_Create_Success(t *testing.T) {
	ticketRepo, userRepo, cache, svc := newTicketService(t)

	user := &domain.User{ID: "u1", Name: "Ana"}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, tk *domain.Ticket) error {
			tk.Total = 500000 // repo fills the total from the locked price
			return nil
		})
	cache.EXPECT().Invalidate(mock.Anything).Return()

	ticket, err := svc.Create(context.Background(), "t1", "u1", 2)

	require.NoError(t, err)
	assert.Equal(t, "t1", ticket.TourID)
	assert.Equal(t, "u1", ticket.UserID)
	assert.Equal(t, 2, ticket.Quantity)
	assert.Equal(t, int64(500000), ticket.Total)
	assert.Equal(t, domain.TicketStatusCommitted, ticket.Status)
	assert.NotEmpty(t, ticket.ID)
}

func TestTicketService_Create_ZeroQuantity(t *testing.T) {
	_, _, _, svc := newTicketService(t)

	_, err := svc.Create(context.Background(), "t1", "u1", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_Create_NegativeQuantity(t *testing.T) {
	_, _, _, svc := newTicketService(t)

	_, err := svc.Create(context.Background(), "t1", "u1", -3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_Create_UserNotFound(t *testing.T) {
	_, userRepo, _, svc := newTicketService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), "t1", "ghost", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestTicketService_Create_CapacityExceeded(t *testing.T) {
	ticketRepo, userRepo, _, svc := newTicketService(t)

	user := &domain.User{ID: "u1"}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCapacityExceeded)

	_, err := svc.Create(context.Background(), "t1", "u1", 50)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestTicketService_Create_TourInactive(t *testing.T) {
	ticketRepo, userRepo, _, svc := newTicketService(t)

	user := &domain.User{ID: "u1"}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrTourInactive)

	_, err := svc.Create(context.Background(), "t1", "u1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTourInactive)
}

func TestTicketService_UpdateQuantity_Success(t *testing.T) {
	ticketRepo, _, cache, svc := newTicketService(t)

	updated := &domain.Ticket{
		ID:       "tk1",
		TourID:   "t1",
		Quantity: 4,
		Total:    1000000,
		Status:   domain.TicketStatusCommitted,
	}
	ticketRepo.EXPECT().UpdateQuantity(mock.Anything, "tk1", 4).Return(updated, nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	ticket, err := svc.UpdateQuantity(context.Background(), "tk1", 4)

	require.NoError(t, err)
	assert.Equal(t, 4, ticket.Quantity)
	assert.Equal(t, int64(1000000), ticket.Total)
}

func TestTicketService_UpdateQuantity_ZeroQuantity(t *testing.T) {
	_, _, _, svc := newTicketService(t)

	_, err := svc.UpdateQuantity(context.Background(), "tk1", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_UpdateQuantity_Cancelled(t *testing.T) {
	ticketRepo, _, _, svc := newTicketService(t)

	ticketRepo.EXPECT().UpdateQuantity(mock.Anything, "tk1", 2).Return(nil, domain.ErrTicketCancelled)

	_, err := svc.UpdateQuantity(context.Background(), "tk1", 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketCancelled)
}

func TestTicketService_UpdateQuantity_CapacityExceeded(t *testing.T) {
	ticketRepo, _, _, svc := newTicketService(t)

	ticketRepo.EXPECT().UpdateQuantity(mock.Anything, "tk1", 40).Return(nil, domain.ErrCapacityExceeded)

	_, err := svc.UpdateQuantity(context.Background(), "tk1", 40)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestTicketService_GetByID_Success(t *testing.T) {
	ticketRepo, _, _, svc := newTicketService(t)

	ticket := &domain.Ticket{ID: "tk1", Quantity: 2, Status: domain.TicketStatusCommitted}
	ticketRepo.EXPECT().GetByID(mock.Anything, "tk1").Return(ticket, nil)

	got, err := svc.GetByID(context.Background(), "tk1")

	require.NoError(t, err)
	assert.Equal(t, "tk1", got.ID)
}

func TestTicketService_Cancel_Success(t *testing.T) {
	ticketRepo, _, cache, svc := newTicketService(t)

	ticketRepo.EXPECT().Cancel(mock.Anything, "tk1").Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	err := svc.Cancel(context.Background(), "tk1")

	require.NoError(t, err)
}

func TestTicketService_Cancel_NotFound(t *testing.T) {
	ticketRepo, _, _, svc := newTicketService(t)

	ticketRepo.EXPECT().Cancel(mock.Anything, "missing").Return(domain.ErrTicketNotFound)

	err := svc.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestTicketService_ListByUser_Success(t *testing.T) {
	ticketRepo, userRepo, _, svc := newTicketService(t)

	user := &domain.User{ID: "u1"}
	summaries := []*domain.TicketSummary{
		{
			Ticket: domain.Ticket{ID: "tk1", UserID: "u1", Quantity: 2},
			Tour:   domain.Tour{ID: "t1", Destination: "Guatape"},
		},
	}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	ticketRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(summaries, nil)

	got, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Guatape", got[0].Tour.Destination)
}

func TestTicketService_ListByUser_UserNotFound(t *testing.T) {
	_, userRepo, _, svc := newTicketService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.ListByUser(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestTicketService_ListByTour_Success(t *testing.T) {
	ticketRepo, _, _, svc := newTicketService(t)

	tickets := []*domain.Ticket{
		{ID: "tk1", TourID: "t1", Quantity: 2},
		{ID: "tk2", TourID: "t1", Quantity: 3},
	}
	ticketRepo.EXPECT().ListByTour(mock.Anything, "t1").Return(tickets, nil)

	got, err := svc.ListByTour(context.Background(), "t1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
