package contracts

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"musobuddy/internal/bookings"
	"musobuddy/pkg/logger"
)

var (
	ErrNotOwner           = errors.New("contract does not belong to user")
	ErrContractClosed     = errors.New("contract is no longer open for changes")
	ErrAlreadySigned      = errors.New("contract has already been signed")
	ErrNotSent            = errors.New("contract has not been sent for signing")
	ErrMissingClientEmail = errors.New("contract has no client email to send to")
)

// BookingSource is the slice of the bookings service the contract flow
// needs: reading the booking a draft is based on and confirming it once
// the client signs.
type BookingSource interface {
	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*bookings.Booking, error)
	TransitionStatus(ctx context.Context, userID, bookingID uuid.UUID, next bookings.Status) (*bookings.Booking, error)
}

// Notifier publishes contract lifecycle notifications
type Notifier interface {
	NotifyContractReady(ctx context.Context, contract *Contract) error
	NotifyContractSigned(ctx context.Context, contract *Contract) error
}

// Service interface defines the contract business logic
type Service interface {
	CreateDraft(ctx context.Context, userID uuid.UUID, req *CreateContractRequest) (*Contract, error)
	GetContract(ctx context.Context, userID, contractID uuid.UUID) (*Contract, error)
	ListContracts(ctx context.Context, userID uuid.UUID, query ContractListQuery) (*ContractListResponse, error)
	SendContract(ctx context.Context, userID, contractID uuid.UUID) (*Contract, error)

	// Public token flow, no authenticated user
	ViewByToken(ctx context.Context, token string) (*PublicContractResponse, error)
	SignByToken(ctx context.Context, token string, req *SignContractRequest) (*PublicContractResponse, error)
}

type service struct {
	repo     Repository
	bookings BookingSource
	notifier Notifier
}

// NewService creates a new contract service instance. notifier may be nil.
func NewService(repo Repository, bookingSource BookingSource, notifier Notifier) Service {
	return &service{
		repo:     repo,
		bookings: bookingSource,
		notifier: notifier,
	}
}

// CreateDraft creates a draft contract from a booking, inheriting the
// booking's client and fee unless the request overrides them. Any open
// contract for the same booking is superseded so at most one contract
// per booking can reach a signature.
func (s *service) CreateDraft(ctx context.Context, userID uuid.UUID, req *CreateContractRequest) (*Contract, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}

	booking, err := s.bookings.GetBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	contract := &Contract{
		UserID:      userID,
		BookingID:   booking.ID,
		ClientName:  booking.ClientName,
		ClientEmail: req.ClientEmail,
		Terms:       req.Terms,
		Fee:         booking.Fee,
		Status:      StatusDraft,
	}
	if req.ClientName != "" {
		contract.ClientName = req.ClientName
	}
	if req.Fee != nil {
		contract.Fee = *req.Fee
	}

	if err := s.repo.Create(ctx, contract); err != nil {
		return nil, err
	}

	if err := s.repo.MarkSupersededForBooking(ctx, booking.ID, contract.ID); err != nil {
		logger.GetDefault().Warn("failed to supersede older contracts",
			slog.String("booking_id", booking.ID.String()),
			slog.Any("error", err),
		)
	}

	return contract, nil
}

func (s *service) GetContract(ctx context.Context, userID, contractID uuid.UUID) (*Contract, error) {
	contract, err := s.repo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract.UserID != userID {
		return nil, ErrNotOwner
	}
	return contract, nil
}

func (s *service) ListContracts(ctx context.Context, userID uuid.UUID, query ContractListQuery) (*ContractListResponse, error) {
	contracts, totalCount, err := s.repo.GetUserContracts(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	return &ContractListResponse{
		Contracts:  contracts,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: bookings.CalculateTotalPages(totalCount, query.Limit),
	}, nil
}

// SendContract issues the signing token and marks the contract sent.
// Re-sending a sent contract keeps its token so earlier emails stay valid.
func (s *service) SendContract(ctx context.Context, userID, contractID uuid.UUID) (*Contract, error) {
	contract, err := s.GetContract(ctx, userID, contractID)
	if err != nil {
		return nil, err
	}

	if !contract.Status.IsOpen() {
		return nil, ErrContractClosed
	}
	if contract.ClientEmail == "" {
		return nil, ErrMissingClientEmail
	}

	if contract.SigningToken == "" {
		token, err := newSigningToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing token: %w", err)
		}
		contract.SigningToken = token
	}

	now := time.Now().UTC()
	contract.Status = StatusSent
	contract.SentAt = &now

	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContractReady(ctx, contract); err != nil {
			logger.GetDefault().Warn("failed to publish contract ready notification",
				slog.String("contract_id", contract.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return contract, nil
}

func (s *service) ViewByToken(ctx context.Context, token string) (*PublicContractResponse, error) {
	contract, err := s.repo.GetBySigningToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return contract.ToPublicResponse(), nil
}

// SignByToken records the client's signature and confirms the linked
// booking. A failed booking transition (already confirmed, cancelled
// meanwhile) does not undo the signature.
func (s *service) SignByToken(ctx context.Context, token string, req *SignContractRequest) (*PublicContractResponse, error) {
	contract, err := s.repo.GetBySigningToken(ctx, token)
	if err != nil {
		return nil, err
	}

	switch contract.Status {
	case StatusSent:
		// signable
	case StatusSigned:
		return nil, ErrAlreadySigned
	case StatusDraft:
		return nil, ErrNotSent
	default:
		return nil, ErrContractClosed
	}

	now := time.Now().UTC()
	contract.Status = StatusSigned
	contract.SignedAt = &now
	contract.SignatureName = req.SignatureName

	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, err
	}

	logger.GetDefault().LogContractSigned(ctx, contract.ID.String(), contract.BookingID.String())

	if _, err := s.bookings.TransitionStatus(ctx, contract.UserID, contract.BookingID, bookings.StatusConfirmed); err != nil {
		logger.GetDefault().Warn("signed contract but booking confirmation failed",
			slog.String("booking_id", contract.BookingID.String()),
			slog.Any("error", err),
		)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContractSigned(ctx, contract); err != nil {
			logger.GetDefault().Warn("failed to publish contract signed notification",
				slog.String("contract_id", contract.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return contract.ToPublicResponse(), nil
}

func newSigningToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
