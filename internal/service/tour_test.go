package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
	"github.com/AnaMorales4/BackColombiaTour/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTourService(t *testing.T) (*mocks.MockTourRepo, *mocks.MockTourListCache, *TourService) {
	t.Helper()
	repo := mocks.NewMockTourRepo(t)
	cache := mocks.NewMockTourListCache(t)
	return repo, cache, NewTourService(repo, cache)
}

func TestTourService_Create_Success(t *testing.T) {
	repo, cache, svc := newTourService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	tour, err := svc.Create(context.Background(), domain.CreateTourInput{
		Destination: "Cartagena",
		Description: "Old town and beaches",
		Price:       250000,
		Capacity:    30,
	})

	require.NoError(t, err)
	assert.Equal(t, "Cartagena", tour.Destination)
	assert.True(t, tour.Active) // active by default
	assert.NotEmpty(t, tour.ID)
}

func TestTourService_Create_InactiveOnRequest(t *testing.T) {
	repo, cache, svc := newTourService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	inactive := false
	tour, err := svc.Create(context.Background(), domain.CreateTourInput{
		Destination: "Leticia",
		Capacity:    10,
		Active:      &inactive,
	})

	require.NoError(t, err)
	assert.False(t, tour.Active)
}

func TestTourService_Create_MissingDestination(t *testing.T) {
	_, _, svc := newTourService(t)

	_, err := svc.Create(context.Background(), domain.CreateTourInput{Capacity: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Create_DescriptionTooLong(t *testing.T) {
	_, _, svc := newTourService(t)

	_, err := svc.Create(context.Background(), domain.CreateTourInput{
		Destination: "Cali",
		Description: strings.Repeat("x", domain.MaxDescriptionLen+1),
		Capacity:    10,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Create_DescriptionAtLimit(t *testing.T) {
	repo, cache, svc := newTourService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	_, err := svc.Create(context.Background(), domain.CreateTourInput{
		Destination: "Cali",
		Description: strings.Repeat("x", domain.MaxDescriptionLen),
		Capacity:    10,
	})

	require.NoError(t, err)
}

func TestTourService_Create_NegativePrice(t *testing.T) {
	_, _, svc := newTourService(t)

	_, err := svc.Create(context.Background(), domain.CreateTourInput{
		Destination: "Cali",
		Price:       -1,
		Capacity:    10,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Create_NegativeCapacity(t *testing.T) {
	_, _, svc := newTourService(t)

	_, err := svc.Create(context.Background(), domain.CreateTourInput{
		Destination: "Cali",
		Capacity:    -5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Update_Success(t *testing.T) {
	repo, cache, svc := newTourService(t)

	price := int64(300000)
	updated := &domain.Tour{ID: "t1", Destination: "Cartagena", Price: price}
	repo.EXPECT().Update(mock.Anything, "t1", mock.Anything).Return(updated, nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	tour, err := svc.Update(context.Background(), "t1", domain.UpdateTourInput{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, price, tour.Price)
}

func TestTourService_Update_EmptyDestination(t *testing.T) {
	_, _, svc := newTourService(t)

	empty := ""
	_, err := svc.Update(context.Background(), "t1", domain.UpdateTourInput{Destination: &empty})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Update_NotFound(t *testing.T) {
	repo, _, svc := newTourService(t)

	repo.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrTourNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateTourInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTourNotFound)
}

func TestTourService_Delete_Success(t *testing.T) {
	repo, cache, svc := newTourService(t)

	repo.EXPECT().Delete(mock.Anything, "t1").Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	require.NoError(t, svc.Delete(context.Background(), "t1"))
}

func TestTourService_SetActive_Success(t *testing.T) {
	repo, cache, svc := newTourService(t)

	repo.EXPECT().SetActive(mock.Anything, "t1", false).Return(nil)
	cache.EXPECT().Invalidate(mock.Anything).Return()

	require.NoError(t, svc.SetActive(context.Background(), "t1", false))
}

func TestTourService_List_NormalizesPaging(t *testing.T) {
	repo, cache, svc := newTourService(t)

	cache.EXPECT().Key(mock.Anything, mock.Anything).Return("k")
	cache.EXPECT().Get(mock.Anything, "k").Return(nil, false)
	cache.EXPECT().Set(mock.Anything, "k", mock.Anything).Return()
	repo.EXPECT().List(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, f domain.TourFilter) ([]*domain.TourWithRemaining, int64, error) {
			assert.Equal(t, 1, f.Page)
			assert.Equal(t, defaultPageLimit, f.Limit)
			return nil, 0, nil
		})

	page, err := svc.List(context.Background(), domain.TourFilter{Page: 0, Limit: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultPageLimit, page.Limit)
}

func TestTourService_List_ClampsLimit(t *testing.T) {
	repo, cache, svc := newTourService(t)

	cache.EXPECT().Key(mock.Anything, mock.Anything).Return("k")
	cache.EXPECT().Get(mock.Anything, "k").Return(nil, false)
	cache.EXPECT().Set(mock.Anything, "k", mock.Anything).Return()
	repo.EXPECT().List(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, f domain.TourFilter) ([]*domain.TourWithRemaining, int64, error) {
			assert.Equal(t, maxPageLimit, f.Limit)
			return nil, 0, nil
		})

	_, err := svc.List(context.Background(), domain.TourFilter{Page: 1, Limit: 5000})

	require.NoError(t, err)
}

func TestTourService_List_TotalPages(t *testing.T) {
	repo, cache, svc := newTourService(t)

	tours := []*domain.TourWithRemaining{
		{Tour: domain.Tour{ID: "t1", Capacity: 30}, Remaining: 25},
	}
	cache.EXPECT().Key(mock.Anything, mock.Anything).Return("k")
	cache.EXPECT().Get(mock.Anything, "k").Return(nil, false)
	cache.EXPECT().Set(mock.Anything, "k", mock.Anything).Return()
	repo.EXPECT().List(mock.Anything, mock.Anything).Return(tours, 21, nil)

	page, err := svc.List(context.Background(), domain.TourFilter{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(21), page.Total)
	assert.Equal(t, int64(3), page.TotalPages)
	require.Len(t, page.Tours, 1)
	assert.Equal(t, 25, page.Tours[0].Remaining)
}

func TestTourService_List_ServesFromCache(t *testing.T) {
	_, cache, svc := newTourService(t)

	cached := &domain.TourPage{
		Tours: []*domain.TourWithRemaining{
			{Tour: domain.Tour{ID: "t1"}, Remaining: 5},
		},
		Total: 1, Page: 1, Limit: 10, TotalPages: 1,
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	cache.EXPECT().Key(mock.Anything, mock.Anything).Return("k")
	cache.EXPECT().Get(mock.Anything, "k").Return(payload, true)

	page, err := svc.List(context.Background(), domain.TourFilter{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Tours, 1)
	assert.Equal(t, 5, page.Tours[0].Remaining)
}
