package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusspaces/internal/domain"
	"campusspaces/internal/modules/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock store and catalog
type MockReservationStore struct {
	mock.Mock
}

func (m *MockReservationStore) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	if r != nil {
		r.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationStore) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationStore) ListActiveForSpaceDate(ctx context.Context, spaceID int64, date time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, spaceID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationStore) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationStore) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationStore) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockSpaceCatalog struct {
	mock.Mock
}

func (m *MockSpaceCatalog) GetSpace(ctx context.Context, id int64) (*domain.Space, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Space), args.Error(1)
}

var (
	userIdentity  = domain.Identity{UserID: 7, Email: "maria@campus.edu", Role: domain.RoleUser}
	adminIdentity = domain.Identity{UserID: 1, Email: "admin@campus.edu", Role: domain.RoleAdmin}
)

func futureDate(daysAhead int) string {
	return time.Now().UTC().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func testSpace() *domain.Space {
	return &domain.Space{
		ID:         3,
		Name:       "Chemistry Lab A",
		Location:   "Science Building",
		Capacity:   24,
		Category:   domain.CategoryLaboratory,
		HourlyRate: 50.00,
		IsActive:   true,
	}
}

func activeReservation(id int64, date, start, end string) domain.Reservation {
	w, _ := parseWindow(date, start, end)
	return domain.Reservation{
		ID:        id,
		UserID:    42,
		SpaceID:   3,
		Date:      w.Date,
		StartTime: w.Start,
		EndTime:   w.End,
		Status:    domain.ReservationPending,
	}
}

func TestService_CreateReservation_Success(t *testing.T) {
	store := new(MockReservationStore)
	spaces := new(MockSpaceCatalog)
	svc := NewService(store, spaces, nil)

	date := futureDate(7)
	spaces.On("GetSpace", mock.Anything, int64(3)).Return(testSpace(), nil)
	store.On("ListActiveForSpaceDate", mock.Anything, int64(3), mock.Anything).Return([]domain.Reservation{}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	r, err := svc.CreateReservation(context.Background(), userIdentity, CreateReservationRequest{
		SpaceID:   3,
		Date:      date,
		StartTime: "09:00",
		EndTime:   "11:00",
		Reason:    string(domain.ReasonGroupStudy),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), r.ID)
	assert.Equal(t, domain.ReservationPending, r.Status)
	assert.Equal(t, 100.00, r.TotalPrice)
	assert.Equal(t, userIdentity.UserID, r.UserID)
	store.AssertExpectations(t)
}

func TestService_CreateReservation_ConflictNamesLowestID(t *testing.T) {
	store := new(MockReservationStore)
	spaces := new(MockSpaceCatalog)
	svc := NewService(store, spaces, nil)

	date := futureDate(7)
	existing := []domain.Reservation{
		activeReservation(5, date, "10:00", "12:00"),
		activeReservation(9, date, "10:30", "11:30"),
	}
	spaces.On("GetSpace", mock.Anything, int64(3)).Return(testSpace(), nil)
	store.On("ListActiveForSpaceDate", mock.Anything, int64(3), mock.Anything).Return(existing, nil)

	_, err := svc.CreateReservation(context.Background(), userIdentity, CreateReservationRequest{
		SpaceID:   3,
		Date:      date,
		StartTime: "11:00",
		EndTime:   "13:00",
		Reason:    string(domain.ReasonPractice),
	})

	assert.ErrorIs(t, err, ErrConflict)
	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(5), conflict.ExistingID)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateReservation_AdjacentWindowDoesNotConflict(t *testing.T) {
	store := new(MockReservationStore)
	spaces := new(MockSpaceCatalog)
	svc := NewService(store, spaces, nil)

	date := futureDate(7)
	existing := []domain.Reservation{activeReservation(5, date, "09:00", "11:00")}
	spaces.On("GetSpace", mock.Anything, int64(3)).Return(testSpace(), nil)
	store.On("ListActiveForSpaceDate", mock.Anything, int64(3), mock.Anything).Return(existing, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	r, err := svc.CreateReservation(context.Background(), userIdentity, CreateReservationRequest{
		SpaceID:   3,
		Date:      date,
		StartTime: "11:00",
		EndTime:   "13:00",
		Reason:    string(domain.ReasonPractice),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationPending, r.Status)
}

func TestService_CreateReservation_InvalidWindow(t *testing.T) {
	svc := NewService(new(MockReservationStore), new(MockSpaceCatalog), nil)

	for _, tc := range []struct{ start, end string }{
		{"11:00", "09:00"},
		{"10:00", "10:00"},
	} {
		_, err := svc.CreateReservation(context.Background(), userIdentity, CreateReservationRequest{
			SpaceID:   3,
			Date:      futureDate(7),
			StartTime: tc.start,
			EndTime:   tc.end,
			Reason:    string(domain.ReasonSports),
		})
		assert.ErrorIs(t, err, ErrInvalidWindow)
	}
}

func TestService_CreateReservation_PastDate(t *testing.T) {
	svc := NewService(new(MockReservationStore), new(MockSpaceCatalog), nil)

	_, err := svc.CreateReservation(context.Background(), userIdentity, CreateReservationRequest{
		SpaceID:   3,
		Date:      "2020-01-01",
		StartTime: "09:00",
		EndTime:   "11:00",
		Reason:    string(domain.ReasonSports),
	})

	assert.ErrorIs(t, err, ErrPastDate)
}

func TestService_CreateReservation_InvalidSpace(t *testing.T) {
	store := new(MockReservationStore)
	spaces := new(MockSpaceCatalog)
	svc := NewService(store, spaces, nil)

	spaces.On("GetSpace", mock.Anything, int64(404)).Return(nil, catalog.ErrSpaceNotFound)

	_, err := svc.CreateReservation(context.Background(), userIdentity, CreateReservationRequest{
		SpaceID:   404,
		Date:      futureDate(7),
		StartTime: "09:00",
		EndTime:   "11:00",
		Reason:    string(domain.ReasonOther),
	})

	assert.ErrorIs(t, err, ErrInvalidSpace)
}

func TestService_CreateReservation_CatalogFailurePropagates(t *testing.T) {
	store := new(MockReservationStore)
	spaces := new(MockSpaceCatalog)
	svc := NewService(store, spaces, nil)

	dbDown := errors.New("connection refused")
	spaces.On("GetSpace", mock.Anything, int64(3)).Return(nil, dbDown)

	_, err := svc.CreateReservation(context.Background(), userIdentity, CreateReservationRequest{
		SpaceID:   3,
		Date:      futureDate(7),
		StartTime: "09:00",
		EndTime:   "11:00",
		Reason:    string(domain.ReasonOther),
	})

	// a storage outage is not a missing space
	assert.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, ErrInvalidSpace)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateReservation_InactiveSpace(t *testing.T) {
	store := new(MockReservationStore)
	spaces := new(MockSpaceCatalog)
	svc := NewService(store, spaces, nil)

	inactive := testSpace()
	inactive.IsActive = false
	spaces.On("GetSpace", mock.Anything, int64(3)).Return(inactive, nil)

	_, err := svc.CreateReservation(context.Background(), userIdentity, CreateReservationRequest{
		SpaceID:   3,
		Date:      futureDate(7),
		StartTime: "09:00",
		EndTime:   "11:00",
		Reason:    string(domain.ReasonOther),
	})

	assert.ErrorIs(t, err, ErrInvalidSpace)
}

func TestService_CreateReservation_UnknownReason(t *testing.T) {
	svc := NewService(new(MockReservationStore), new(MockSpaceCatalog), nil)

	_, err := svc.CreateReservation(context.Background(), userIdentity, CreateReservationRequest{
		SpaceID:   3,
		Date:      futureDate(7),
		StartTime: "09:00",
		EndTime:   "11:00",
		Reason:    "birthday_party",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateReservation_UnknownRoleFailsClosed(t *testing.T) {
	svc := NewService(new(MockReservationStore), new(MockSpaceCatalog), nil)

	ghost := domain.Identity{UserID: 13, Role: "ghost"}
	_, err := svc.CreateReservation(context.Background(), ghost, CreateReservationRequest{
		SpaceID:   3,
		Date:      futureDate(7),
		StartTime: "09:00",
		EndTime:   "11:00",
		Reason:    string(domain.ReasonSports),
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_ChangeStatus_AdminConfirms(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewService(store, new(MockSpaceCatalog), nil)

	date := futureDate(7)
	r := activeReservation(55, date, "09:00", "11:00")
	store.On("GetByID", mock.Anything, int64(55)).Return(&r, nil)
	store.On("UpdateStatus", mock.Anything, int64(55), domain.ReservationConfirmed).Return(nil)

	updated, err := svc.ChangeStatus(context.Background(), adminIdentity, 55, "confirmed")

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, updated.Status)
	store.AssertExpectations(t)
}

func TestService_ChangeStatus_OwnerCannotConfirm(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewService(store, new(MockSpaceCatalog), nil)

	r := activeReservation(55, futureDate(7), "09:00", "11:00")
	r.UserID = userIdentity.UserID
	store.On("GetByID", mock.Anything, int64(55)).Return(&r, nil)

	_, err := svc.ChangeStatus(context.Background(), userIdentity, 55, "confirmed")

	assert.ErrorIs(t, err, ErrForbidden)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ChangeStatus_OwnerCancelsOwnPending(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewService(store, new(MockSpaceCatalog), nil)

	r := activeReservation(55, futureDate(7), "09:00", "11:00")
	r.UserID = userIdentity.UserID
	store.On("GetByID", mock.Anything, int64(55)).Return(&r, nil)
	store.On("UpdateStatus", mock.Anything, int64(55), domain.ReservationCancelled).Return(nil)

	updated, err := svc.ChangeStatus(context.Background(), userIdentity, 55, "cancelled")

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, updated.Status)
}

func TestService_ChangeStatus_StrangerCannotCancel(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewService(store, new(MockSpaceCatalog), nil)

	r := activeReservation(55, futureDate(7), "09:00", "11:00")
	r.UserID = 4242
	store.On("GetByID", mock.Anything, int64(55)).Return(&r, nil)

	_, err := svc.ChangeStatus(context.Background(), userIdentity, 55, "cancelled")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_ChangeStatus_TerminalStateIsFinal(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewService(store, new(MockSpaceCatalog), nil)

	r := activeReservation(55, futureDate(7), "09:00", "11:00")
	r.Status = domain.ReservationCancelled
	store.On("GetByID", mock.Anything, int64(55)).Return(&r, nil)

	_, err := svc.ChangeStatus(context.Background(), adminIdentity, 55, "confirmed")

	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestService_ChangeStatus_UnknownStatusString(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewService(store, new(MockSpaceCatalog), nil)

	_, err := svc.ChangeStatus(context.Background(), adminIdentity, 55, "approved")

	assert.ErrorIs(t, err, ErrIllegalTransition)
	store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_ChangeStatus_NotFound(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewService(store, new(MockSpaceCatalog), nil)

	store.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ChangeStatus(context.Background(), adminIdentity, 404, "confirmed")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListReservations_SelfScope(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewService(store, new(MockSpaceCatalog), nil)

	own := []domain.Reservation{activeReservation(1, futureDate(3), "09:00", "10:00")}
	store.On("ListByUser", mock.Anything, userIdentity.UserID).Return(own, nil)

	rs, err := svc.ListReservations(context.Background(), userIdentity, ScopeSelf)

	assert.NoError(t, err)
	assert.Len(t, rs, 1)
	store.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestService_ListReservations_AllScopeRequiresAdmin(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewService(store, new(MockSpaceCatalog), nil)

	_, err := svc.ListReservations(context.Background(), userIdentity, ScopeAll)
	assert.ErrorIs(t, err, ErrForbidden)

	store.On("ListAll", mock.Anything).Return([]domain.Reservation{}, nil)
	_, err = svc.ListReservations(context.Background(), adminIdentity, ScopeAll)
	assert.NoError(t, err)
}

func TestService_CheckAvailability(t *testing.T) {
	store := new(MockReservationStore)
	spaces := new(MockSpaceCatalog)
	svc := NewService(store, spaces, nil)

	date := futureDate(7)
	existing := []domain.Reservation{activeReservation(5, date, "09:00", "11:00")}
	spaces.On("GetSpace", mock.Anything, int64(3)).Return(testSpace(), nil)
	store.On("ListActiveForSpaceDate", mock.Anything, int64(3), mock.Anything).Return(existing, nil)

	result, err := svc.CheckAvailability(context.Background(), 3, date, "10:00", "12:00")
	assert.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, int64(5), *result.ConflictWith)

	result, err = svc.CheckAvailability(context.Background(), 3, date, "11:00", "13:00")
	assert.NoError(t, err)
	assert.True(t, result.Available)
	assert.Nil(t, result.ConflictWith)
}

func TestService_DayAvailability(t *testing.T) {
	store := new(MockReservationStore)
	spaces := new(MockSpaceCatalog)
	svc := NewService(store, spaces, nil)

	date := futureDate(7)
	existing := []domain.Reservation{
		activeReservation(5, date, "09:00", "11:00"),
		activeReservation(6, date, "14:00", "15:30"),
	}
	spaces.On("GetSpace", mock.Anything, int64(3)).Return(testSpace(), nil)
	store.On("ListActiveForSpaceDate", mock.Anything, int64(3), mock.Anything).Return(existing, nil)

	day, err := svc.DayAvailability(context.Background(), 3, date)

	assert.NoError(t, err)
	assert.Equal(t, date, day.Date)
	assert.Len(t, day.BookedSlots, 2)
	assert.Equal(t, "09:00", day.BookedSlots[0].Start)
	assert.Equal(t, "15:30", day.BookedSlots[1].End)
}
