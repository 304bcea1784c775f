package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"flight-booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Search(ctx context.Context, origin, destination string, from, to time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, origin, destination, from, to)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ReserveSeat(ctx context.Context, flightID string) error {
	args := m.Called(ctx, flightID)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFlightService_Search_NormalizesAndBoundsDay(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	now := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	service := NewFlightService(mockRepo, nil, WithClock(fixedClock(now)))

	ctx := context.Background()
	startOfDay := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.Add(24*time.Hour - time.Nanosecond)

	found := []domain.Flight{
		{ID: "f-1", Origin: "LAX", Destination: "JFK", DepartureTime: startOfDay.Add(8 * time.Hour), AvailableSeats: 10},
	}
	mockRepo.On("Search", ctx, "LAX", "JFK", startOfDay, endOfDay).Return(found, nil).Once()

	result, err := service.Search(ctx, SearchInput{Origin: "lax", Destination: "jfk", Date: "2024-02-15"})

	assert.NoError(t, err)
	assert.Equal(t, found, result)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_Search_EmptyResultIsNotAnError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	now := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	service := NewFlightService(mockRepo, nil, WithClock(fixedClock(now)))

	ctx := context.Background()
	mockRepo.On("Search", ctx, "LAX", "JFK", mock.Anything, mock.Anything).Return([]domain.Flight{}, nil).Once()

	result, err := service.Search(ctx, SearchInput{Origin: "LAX", Destination: "JFK", Date: "2024-02-15"})

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestFlightService_Search_ValidationErrors(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	now := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	service := NewFlightService(mockRepo, nil, WithClock(fixedClock(now)))

	testCases := []struct {
		name  string
		input SearchInput
	}{
		{"origin too short", SearchInput{Origin: "LA", Destination: "JFK", Date: "2024-02-15"}},
		{"origin too long", SearchInput{Origin: "LAXX", Destination: "JFK", Date: "2024-02-15"}},
		{"destination not letters", SearchInput{Origin: "LAX", Destination: "J4K", Date: "2024-02-15"}},
		{"unparsable date", SearchInput{Origin: "LAX", Destination: "JFK", Date: "next tuesday"}},
		{"date in the past", SearchInput{Origin: "LAX", Destination: "JFK", Date: "2024-02-01"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := service.Search(context.Background(), tc.input)
			assert.Error(t, err)
			assert.Nil(t, result)
			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	mockRepo.AssertNotCalled(t, "Search")
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	flights := []domain.Flight{{ID: "f-1", Origin: "LAX", Destination: "JFK", AvailableSeats: 50}}

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), nil).Once()
	mockRepo.On("List", ctx).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	flights := []domain.Flight{{ID: "f-1", Origin: "LAX", Destination: "JFK", AvailableSeats: 50}}

	mockCache.On("GetFlights", ctx).Return(flights, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockRepo.AssertNotCalled(t, "List")
}

func TestFlightService_List_CacheErrorFallsThrough(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	flights := []domain.Flight{{ID: "f-1", AvailableSeats: 50}}

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), errors.New("redis down")).Once()
	mockRepo.On("List", ctx).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
}

func TestFlightService_List_NoCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	flights := []domain.Flight{{ID: "f-1", AvailableSeats: 50}}
	mockRepo.On("List", ctx).Return(flights, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrFlightNotFound).Once()

	result, err := service.GetByID(ctx, "missing")

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
	assert.Nil(t, result)
}
