package bookings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"musobuddy/internal/conflicts"
	"musobuddy/internal/shared/constants"
	"musobuddy/pkg/cache"
	"musobuddy/pkg/logger"
)

var (
	ErrNotOwner          = errors.New("booking does not belong to user")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidEventDate  = errors.New("event date must be YYYY-MM-DD")
)

// Notifier publishes booking lifecycle notifications (to avoid a direct
// dependency on the notifications package)
type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *Booking) error
}

// Service interface defines the contract for booking business logic
type Service interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*Booking, error)
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error)
	ListBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*BookingListResponse, error)
	UpdateBooking(ctx context.Context, userID, bookingID uuid.UUID, req *UpdateBookingRequest) (*Booking, error)
	TransitionStatus(ctx context.Context, userID, bookingID uuid.UUID, next Status) (*Booking, error)
	DeleteBooking(ctx context.Context, userID, bookingID uuid.UUID) error

	// Conflict detection over the user's active bookings
	ScanConflicts(ctx context.Context, userID uuid.UUID) (*ConflictScanResponse, error)
	BookingConflicts(ctx context.Context, userID, bookingID uuid.UUID) (*BookingConflictsResponse, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	notifier Notifier
}

// NewService creates a new booking service instance. cache and notifier may
// be nil; the service then skips caching and notifications.
func NewService(repo Repository, cacheService cache.Service, notifier Notifier) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		notifier: notifier,
	}
}

func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*Booking, error) {
	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		UserID:       userID,
		ClientName:   req.ClientName,
		Title:        req.Title,
		EventDate:    eventDate,
		EventTime:    req.EventTime,
		EventEndTime: req.EventEndTime,
		Venue:        req.Venue,
		VenueAddress: req.VenueAddress,
		Fee:          req.Fee,
		Notes:        req.Notes,
		Status:       StatusNew,
	}

	if req.ClientID != "" {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			return nil, fmt.Errorf("invalid client ID: %w", err)
		}
		booking.ClientID = &clientID
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidateUserCaches(ctx, userID)
	logger.GetDefault().LogBookingCreated(ctx, booking.ID.String(), userID.String())

	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotOwner
	}
	return booking, nil
}

func (s *service) ListBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*BookingListResponse, error) {
	if query.Status != "" && !Status(query.Status).IsValid() {
		return nil, ErrInvalidStatus
	}

	bookings, totalCount, err := s.repo.GetUserBookings(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	return &BookingListResponse{
		Bookings:   bookings,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: CalculateTotalPages(totalCount, query.Limit),
	}, nil
}

func (s *service) UpdateBooking(ctx context.Context, userID, bookingID uuid.UUID, req *UpdateBookingRequest) (*Booking, error) {
	booking, err := s.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		booking.ClientName = *req.ClientName
	}
	if req.Title != nil {
		booking.Title = *req.Title
	}
	if req.EventDate != nil {
		eventDate, err := parseEventDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		booking.EventDate = eventDate
	}
	if req.EventTime != nil {
		booking.EventTime = *req.EventTime
	}
	if req.EventEndTime != nil {
		booking.EventEndTime = *req.EventEndTime
	}
	if req.Venue != nil {
		booking.Venue = *req.Venue
	}
	if req.VenueAddress != nil {
		booking.VenueAddress = *req.VenueAddress
	}
	if req.Fee != nil {
		booking.Fee = *req.Fee
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidateUserCaches(ctx, userID)

	return booking, nil
}

func (s *service) TransitionStatus(ctx context.Context, userID, bookingID uuid.UUID, next Status) (*Booking, error) {
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	booking, err := s.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, next); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	booking.Status = next

	s.invalidateUserCaches(ctx, userID)

	if next == StatusConfirmed && s.notifier != nil {
		if err := s.notifier.NotifyBookingConfirmed(ctx, booking); err != nil {
			// Notification failure must not roll back the transition
			logger.GetDefault().Warn("failed to publish booking confirmation",
				slog.String("booking_id", booking.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	if next == StatusCancelled {
		logger.GetDefault().LogBookingCancelled(ctx, booking.ID.String(), userID.String())
	}

	return booking, nil
}

func (s *service) DeleteBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	if _, err := s.GetBooking(ctx, userID, bookingID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidateUserCaches(ctx, userID)
	return nil
}

// ScanConflicts runs the pairwise conflict scan across the user's active
// bookings. The scan itself is pure and cheap, so the short cache TTL only
// spares the bookings query on dashboard refreshes.
func (s *service) ScanConflicts(ctx context.Context, userID uuid.UUID) (*ConflictScanResponse, error) {
	key := constants.BuildUserConflictsKey(userID.String())

	var response ConflictScanResponse
	if s.cache != nil {
		if err := s.cache.Get(ctx, key, &response); err == nil {
			return &response, nil
		}
	}

	bookings, err := s.repo.GetActiveUserBookings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active bookings: %w", err)
	}

	infos := make([]conflicts.BookingInfo, len(bookings))
	for i, b := range bookings {
		infos[i] = b.ToConflictInfo()
	}

	results := conflicts.DetectAllConflicts(infos)
	response = ConflictScanResponse{
		Conflicts:     results,
		ConflictCount: len(results),
		ScannedCount:  len(bookings),
	}

	logger.GetDefault().LogConflictScan(ctx, userID.String(), len(bookings), len(results))

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, &response, constants.TTL_CONFLICT_SCAN); err != nil {
			logger.GetDefault().Warn("failed to cache conflict scan", slog.Any("error", err))
		}
	}

	return &response, nil
}

// BookingConflicts checks one booking against the rest of the user's active
// calendar, the per-card badge the booking list renders.
func (s *service) BookingConflicts(ctx context.Context, userID, bookingID uuid.UUID) (*BookingConflictsResponse, error) {
	booking, err := s.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	others, err := s.repo.GetActiveUserBookings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active bookings: %w", err)
	}

	target := booking.ToConflictInfo()
	results := make([]conflicts.Result, 0)
	severity := conflicts.SeverityNone

	for _, other := range others {
		if other.ID == booking.ID {
			continue
		}
		if r := conflicts.DetectConflict(target, other.ToConflictInfo()); r.HasConflict {
			results = append(results, r)
			if r.Severity == conflicts.SeverityCritical || severity == conflicts.SeverityNone {
				severity = r.Severity
			}
		}
	}

	return &BookingConflictsResponse{
		Booking:   *booking,
		Conflicts: results,
		Severity:  severity,
	}, nil
}

func (s *service) invalidateUserCaches(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, constants.PatternUserBookingData(userID.String())); err != nil {
		logger.GetDefault().Warn("failed to invalidate booking caches",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}
}

func parseEventDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, ErrInvalidEventDate
	}
	return &parsed, nil
}
