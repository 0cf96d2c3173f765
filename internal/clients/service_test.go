package clients

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	clients map[uuid.UUID]*Client
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{clients: make(map[uuid.UUID]*Client)}
}

func (f *fakeRepository) Create(_ context.Context, client *Client) error {
	client.ID = uuid.New()
	stored := *client
	f.clients[client.ID] = &stored
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	copied := *client
	return &copied, nil
}

func (f *fakeRepository) GetUserClients(_ context.Context, userID uuid.UUID, query ClientListQuery) ([]Client, int64, error) {
	var out []Client
	for _, client := range f.clients {
		if client.UserID != userID {
			continue
		}
		if query.Search != "" && !strings.Contains(strings.ToLower(client.Name), strings.ToLower(query.Search)) {
			continue
		}
		out = append(out, *client)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepository) Update(_ context.Context, client *Client) error {
	if _, ok := f.clients[client.ID]; !ok {
		return ErrClientNotFound
	}
	stored := *client
	f.clients[client.ID] = &stored
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.clients[id]; !ok {
		return ErrClientNotFound
	}
	delete(f.clients, id)
	return nil
}

func TestCreateAndGetClient(t *testing.T) {
	svc := NewService(newFakeRepository())
	userID := uuid.New()

	created, err := svc.CreateClient(context.Background(), userID, &CreateClientRequest{
		Name:  "Sarah Mitchell",
		Email: "sarah@example.com",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetClient(context.Background(), userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Mitchell", got.Name)
	assert.Equal(t, "sarah@example.com", got.Email)
}

func TestGetClientRejectsForeignOwner(t *testing.T) {
	svc := NewService(newFakeRepository())
	owner := uuid.New()

	created, err := svc.CreateClient(context.Background(), owner, &CreateClientRequest{Name: "The Kings Arms"})
	require.NoError(t, err)

	_, err = svc.GetClient(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateClientPatchesOnlyProvidedFields(t *testing.T) {
	svc := NewService(newFakeRepository())
	userID := uuid.New()

	created, err := svc.CreateClient(context.Background(), userID, &CreateClientRequest{
		Name:  "Brightwave Events",
		Email: "old@example.com",
		Phone: "+44 20 7946 0958",
	})
	require.NoError(t, err)

	newEmail := "bookings@brightwave.example.com"
	updated, err := svc.UpdateClient(context.Background(), userID, created.ID, &UpdateClientRequest{
		Email: &newEmail,
	})
	require.NoError(t, err)

	assert.Equal(t, "Brightwave Events", updated.Name)
	assert.Equal(t, newEmail, updated.Email)
	assert.Equal(t, "+44 20 7946 0958", updated.Phone)
}

func TestDeleteClient(t *testing.T) {
	svc := NewService(newFakeRepository())
	userID := uuid.New()

	created, err := svc.CreateClient(context.Background(), userID, &CreateClientRequest{Name: "One Off"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClient(context.Background(), userID, created.ID))

	_, err = svc.GetClient(context.Background(), userID, created.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClientRejectsForeignOwner(t *testing.T) {
	svc := NewService(newFakeRepository())
	owner := uuid.New()

	created, err := svc.CreateClient(context.Background(), owner, &CreateClientRequest{Name: "Private"})
	require.NoError(t, err)

	err = svc.DeleteClient(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestListClientsFiltersBySearch(t *testing.T) {
	svc := NewService(newFakeRepository())
	userID := uuid.New()

	for _, name := range []string{"Sarah Mitchell", "The Kings Arms", "Mitch Taylor"} {
		_, err := svc.CreateClient(context.Background(), userID, &CreateClientRequest{Name: name})
		require.NoError(t, err)
	}

	clients, total, err := svc.ListClients(context.Background(), userID, ClientListQuery{Search: "mitch"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, clients, 2)
}
