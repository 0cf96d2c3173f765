package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotOwner = errors.New("client does not belong to user")

// Service interface defines the contract for client address-book logic
type Service interface {
	CreateClient(ctx context.Context, userID uuid.UUID, req *CreateClientRequest) (*Client, error)
	GetClient(ctx context.Context, userID, clientID uuid.UUID) (*Client, error)
	ListClients(ctx context.Context, userID uuid.UUID, query ClientListQuery) ([]Client, int64, error)
	UpdateClient(ctx context.Context, userID, clientID uuid.UUID, req *UpdateClientRequest) (*Client, error)
	DeleteClient(ctx context.Context, userID, clientID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateClient(ctx context.Context, userID uuid.UUID, req *CreateClientRequest) (*Client, error) {
	client := &Client{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func (s *service) GetClient(ctx context.Context, userID, clientID uuid.UUID) (*Client, error) {
	client, err := s.repo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.UserID != userID {
		return nil, ErrNotOwner
	}
	return client, nil
}

func (s *service) ListClients(ctx context.Context, userID uuid.UUID, query ClientListQuery) ([]Client, int64, error) {
	return s.repo.GetUserClients(ctx, userID, query)
}

func (s *service) UpdateClient(ctx context.Context, userID, clientID uuid.UUID, req *UpdateClientRequest) (*Client, error) {
	client, err := s.GetClient(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return client, nil
}

func (s *service) DeleteClient(ctx context.Context, userID, clientID uuid.UUID) error {
	if _, err := s.GetClient(ctx, userID, clientID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, clientID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}
