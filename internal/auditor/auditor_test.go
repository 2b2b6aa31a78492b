package auditor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AnaMorales4/BackColombiaTour/internal/auditor/mocks"
	"github.com/AnaMorales4/BackColombiaTour/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestAuditor_Tick_ReportsOversold(t *testing.T) {
	scanner := mocks.NewMockOversoldScanner(t)
	log := newTestLogger(t)

	a := New(scanner, 50*time.Millisecond, log)

	oversold := []*domain.OversoldTour{
		{TourID: "t1", Capacity: 10, Committed: 12},
	}
	scanner.EXPECT().FindOversold(mock.Anything).Return(oversold, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(scanner.Calls), 1)
}

func TestAuditor_Tick_HandlesError(t *testing.T) {
	scanner := mocks.NewMockOversoldScanner(t)
	log := newTestLogger(t)

	a := New(scanner, 50*time.Millisecond, log)

	scanner.EXPECT().FindOversold(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(scanner.Calls), 1)
}

func TestAuditor_StopsOnContextCancel(t *testing.T) {
	scanner := mocks.NewMockOversoldScanner(t)
	log := newTestLogger(t)

	a := New(scanner, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		a.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("auditor did not stop on context cancel")
	}
}

func TestAuditor_MultipleTicks(t *testing.T) {
	scanner := mocks.NewMockOversoldScanner(t)
	log := newTestLogger(t)

	a := New(scanner, 30*time.Millisecond, log)

	scanner.EXPECT().FindOversold(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(scanner.Calls), 3)
}
