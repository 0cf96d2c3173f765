package clients

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

type Repository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
	GetUserClients(ctx context.Context, userID uuid.UUID, query ClientListQuery) ([]Client, int64, error)
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, client *Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	var client Client
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *repository) GetUserClients(ctx context.Context, userID uuid.UUID, query ClientListQuery) ([]Client, int64, error) {
	var clients []Client
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}

	baseQuery := r.db.WithContext(ctx).
		Model(&Client{}).
		Where("user_id = ?", userID)

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		baseQuery = baseQuery.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("name ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&clients).Error

	return clients, totalCount, err
}

func (r *repository) Update(ctx context.Context, client *Client) error {
	result := r.db.WithContext(ctx).
		Model(&Client{}).
		Where("id = ?", client.ID).
		Updates(client)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Client{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
