package contracts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrContractNotFound = errors.New("contract not found")

// Repository interface defines the contract persistence operations
type Repository interface {
	Create(ctx context.Context, contract *Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*Contract, error)
	GetBySigningToken(ctx context.Context, token string) (*Contract, error)
	GetUserContracts(ctx context.Context, userID uuid.UUID, query ContractListQuery) ([]Contract, int64, error)
	Update(ctx context.Context, contract *Contract) error
	MarkSupersededForBooking(ctx context.Context, bookingID, keepID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new contract repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, contract *Contract) error {
	if err := r.db.WithContext(ctx).Create(contract).Error; err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Contract, error) {
	var contract Contract
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &contract, nil
}

func (r *repository) GetBySigningToken(ctx context.Context, token string) (*Contract, error) {
	var contract Contract
	err := r.db.WithContext(ctx).Where("signing_token = ?", token).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to get contract by token: %w", err)
	}
	return &contract, nil
}

func (r *repository) GetUserContracts(ctx context.Context, userID uuid.UUID, query ContractListQuery) ([]Contract, int64, error) {
	db := r.db.WithContext(ctx).Model(&Contract{}).Where("user_id = ?", userID)

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.BookingID != "" {
		bookingID, err := uuid.Parse(query.BookingID)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid booking ID filter: %w", err)
		}
		db = db.Where("booking_id = ?", bookingID)
	}

	var totalCount int64
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contracts: %w", err)
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	var contracts []Contract
	err := db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&contracts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contracts: %w", err)
	}

	return contracts, totalCount, nil
}

func (r *repository) Update(ctx context.Context, contract *Contract) error {
	if err := r.db.WithContext(ctx).Save(contract).Error; err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}
	return nil
}

// MarkSupersededForBooking retires every open contract for the booking
// except keepID, so only one contract can ever be signed per booking.
func (r *repository) MarkSupersededForBooking(ctx context.Context, bookingID, keepID uuid.UUID) error {
	err := r.db.WithContext(ctx).Model(&Contract{}).
		Where("booking_id = ? AND id <> ? AND status IN ?", bookingID, keepID, []Status{StatusDraft, StatusSent}).
		Update("status", StatusSuperseded).Error
	if err != nil {
		return fmt.Errorf("failed to supersede contracts: %w", err)
	}
	return nil
}
