package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musobuddy/internal/conflicts"
)

// fakeRepository backs the service with an in-memory booking slice.
type fakeRepository struct {
	bookings map[uuid.UUID]*Booking
	nextNum  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[uuid.UUID]*Booking), nextNum: 1}
}

func (f *fakeRepository) Create(_ context.Context, booking *Booking) error {
	booking.ID = uuid.New()
	booking.BookingNumber = f.nextNum
	f.nextNum++
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeRepository) GetUserBookings(_ context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	var result []Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			result = append(result, *b)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeRepository) GetActiveUserBookings(_ context.Context, userID uuid.UUID) ([]Booking, error) {
	var result []Booking
	for _, b := range f.bookings {
		if b.UserID == userID && b.Status.IsActive() {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (f *fakeRepository) Update(_ context.Context, booking *Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return ErrBookingNotFound
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id uuid.UUID, status Status) error {
	booking, ok := f.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

type fakeNotifier struct {
	confirmed []uuid.UUID
}

func (f *fakeNotifier) NotifyBookingConfirmed(_ context.Context, booking *Booking) error {
	f.confirmed = append(f.confirmed, booking.ID)
	return nil
}

func createTestBooking(t *testing.T, svc Service, userID uuid.UUID, date, start, end string) *Booking {
	t.Helper()
	booking, err := svc.CreateBooking(context.Background(), userID, &CreateBookingRequest{
		ClientName:   "Test Client",
		EventDate:    date,
		EventTime:    start,
		EventEndTime: end,
	})
	require.NoError(t, err)
	return booking
}

func TestCreateBookingParsesEventDate(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, nil)
	userID := uuid.New()

	booking := createTestBooking(t, svc, userID, "2025-06-01", "19:00", "")

	require.NotNil(t, booking.EventDate)
	assert.Equal(t, 2025, booking.EventDate.Year())
	assert.Equal(t, time.June, booking.EventDate.Month())
	assert.Equal(t, StatusNew, booking.Status)
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, nil)

	_, err := svc.CreateBooking(context.Background(), uuid.New(), &CreateBookingRequest{
		ClientName: "Test Client",
		EventDate:  "01/06/2025",
	})

	assert.ErrorIs(t, err, ErrInvalidEventDate)
}

func TestGetBookingEnforcesOwnership(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, nil)
	owner := uuid.New()

	booking := createTestBooking(t, svc, owner, "2025-06-01", "19:00", "")

	_, err := svc.GetBooking(context.Background(), uuid.New(), booking.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	got, err := svc.GetBooking(context.Background(), owner, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
}

func TestTransitionStatusNotifiesOnConfirm(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(newFakeRepository(), nil, notifier)
	userID := uuid.New()

	booking := createTestBooking(t, svc, userID, "2025-06-01", "19:00", "")

	updated, err := svc.TransitionStatus(context.Background(), userID, booking.ID, StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.Equal(t, []uuid.UUID{booking.ID}, notifier.confirmed)
}

func TestTransitionStatusRejectsIllegalMove(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, nil)
	userID := uuid.New()

	booking := createTestBooking(t, svc, userID, "2025-06-01", "19:00", "")

	_, err := svc.TransitionStatus(context.Background(), userID, booking.ID, StatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.TransitionStatus(context.Background(), userID, booking.ID, Status("bogus"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestScanConflictsFindsOverlap(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, nil)
	userID := uuid.New()

	createTestBooking(t, svc, userID, "2025-06-01", "14:00", "")
	createTestBooking(t, svc, userID, "2025-06-01", "15:00", "")
	createTestBooking(t, svc, userID, "2025-06-02", "15:00", "")

	scan, err := svc.ScanConflicts(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 3, scan.ScannedCount)
	require.Equal(t, 1, scan.ConflictCount)
	assert.Equal(t, conflicts.SeverityCritical, scan.Conflicts[0].Severity)
	require.NotNil(t, scan.Conflicts[0].Details.OverlapMinutes)
	assert.Equal(t, 60, *scan.Conflicts[0].Details.OverlapMinutes)
}

func TestScanConflictsIgnoresCancelled(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, nil)
	userID := uuid.New()

	a := createTestBooking(t, svc, userID, "2025-06-01", "14:00", "")
	createTestBooking(t, svc, userID, "2025-06-01", "15:00", "")

	_, err := svc.TransitionStatus(context.Background(), userID, a.ID, StatusCancelled)
	require.NoError(t, err)

	scan, err := svc.ScanConflicts(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 0, scan.ConflictCount)
	assert.Equal(t, 1, scan.ScannedCount)
}

func TestBookingConflictsSeverityBadge(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, nil)
	userID := uuid.New()

	target := createTestBooking(t, svc, userID, "2025-06-01", "14:00", "16:00")
	createTestBooking(t, svc, userID, "2025-06-01", "15:00", "17:00")
	createTestBooking(t, svc, userID, "2025-06-01", "20:00", "22:00")

	result, err := svc.BookingConflicts(context.Background(), userID, target.ID)
	require.NoError(t, err)

	assert.Len(t, result.Conflicts, 2)
	assert.Equal(t, conflicts.SeverityCritical, result.Severity)
}
