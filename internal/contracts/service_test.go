package contracts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musobuddy/internal/bookings"
)

type fakeRepository struct {
	contracts map[uuid.UUID]*Contract
	nextNum   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{contracts: make(map[uuid.UUID]*Contract)}
}

func (f *fakeRepository) Create(_ context.Context, contract *Contract) error {
	contract.ID = uuid.New()
	f.nextNum++
	contract.ContractNumber = f.nextNum
	stored := *contract
	f.contracts[contract.ID] = &stored
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*Contract, error) {
	contract, ok := f.contracts[id]
	if !ok {
		return nil, ErrContractNotFound
	}
	copied := *contract
	return &copied, nil
}

func (f *fakeRepository) GetBySigningToken(_ context.Context, token string) (*Contract, error) {
	for _, contract := range f.contracts {
		if contract.SigningToken != "" && contract.SigningToken == token {
			copied := *contract
			return &copied, nil
		}
	}
	return nil, ErrContractNotFound
}

func (f *fakeRepository) GetUserContracts(_ context.Context, userID uuid.UUID, query ContractListQuery) ([]Contract, int64, error) {
	var out []Contract
	for _, contract := range f.contracts {
		if contract.UserID != userID {
			continue
		}
		if query.Status != "" && contract.Status.String() != query.Status {
			continue
		}
		out = append(out, *contract)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepository) Update(_ context.Context, contract *Contract) error {
	if _, ok := f.contracts[contract.ID]; !ok {
		return ErrContractNotFound
	}
	stored := *contract
	f.contracts[contract.ID] = &stored
	return nil
}

func (f *fakeRepository) MarkSupersededForBooking(_ context.Context, bookingID, keepID uuid.UUID) error {
	for _, contract := range f.contracts {
		if contract.BookingID == bookingID && contract.ID != keepID && contract.Status.IsOpen() {
			contract.Status = StatusSuperseded
		}
	}
	return nil
}

type fakeBookingSource struct {
	booking     *bookings.Booking
	transitions []bookings.Status
	fail        error
}

func (f *fakeBookingSource) GetBooking(_ context.Context, userID, bookingID uuid.UUID) (*bookings.Booking, error) {
	if f.booking == nil || f.booking.ID != bookingID {
		return nil, bookings.ErrBookingNotFound
	}
	if f.booking.UserID != userID {
		return nil, bookings.ErrNotOwner
	}
	return f.booking, nil
}

func (f *fakeBookingSource) TransitionStatus(_ context.Context, _, _ uuid.UUID, next bookings.Status) (*bookings.Booking, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.transitions = append(f.transitions, next)
	f.booking.Status = next
	return f.booking, nil
}

type fakeNotifier struct {
	ready  []uuid.UUID
	signed []uuid.UUID
}

func (f *fakeNotifier) NotifyContractReady(_ context.Context, contract *Contract) error {
	f.ready = append(f.ready, contract.ID)
	return nil
}

func (f *fakeNotifier) NotifyContractSigned(_ context.Context, contract *Contract) error {
	f.signed = append(f.signed, contract.ID)
	return nil
}

func newTestBooking(userID uuid.UUID) *bookings.Booking {
	return &bookings.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		ClientName: "Sarah Mitchell",
		Fee:        450,
		Status:     bookings.StatusNew,
	}
}

func TestCreateDraftInheritsBookingDetails(t *testing.T) {
	userID := uuid.New()
	booking := newTestBooking(userID)
	svc := NewService(newFakeRepository(), &fakeBookingSource{booking: booking}, nil)

	contract, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{
		BookingID: booking.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDraft, contract.Status)
	assert.Equal(t, "Sarah Mitchell", contract.ClientName)
	assert.Equal(t, 450.0, contract.Fee)
	assert.Equal(t, booking.ID, contract.BookingID)
}

func TestCreateDraftOverrides(t *testing.T) {
	userID := uuid.New()
	booking := newTestBooking(userID)
	svc := NewService(newFakeRepository(), &fakeBookingSource{booking: booking}, nil)

	fee := 600.0
	contract, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{
		BookingID:  booking.ID.String(),
		ClientName: "Sarah Mitchell-Jones",
		Fee:        &fee,
		Terms:      "Two 45 minute sets, PA provided by venue.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sarah Mitchell-Jones", contract.ClientName)
	assert.Equal(t, 600.0, contract.Fee)
	assert.Equal(t, "Two 45 minute sets, PA provided by venue.", contract.Terms)
}

func TestCreateDraftSupersedesOpenContracts(t *testing.T) {
	userID := uuid.New()
	booking := newTestBooking(userID)
	repo := newFakeRepository()
	svc := NewService(repo, &fakeBookingSource{booking: booking}, nil)

	first, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{BookingID: booking.ID.String()})
	require.NoError(t, err)

	second, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{BookingID: booking.ID.String()})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusSuperseded, stored.Status)

	stored, err = repo.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, stored.Status)
}

func TestCreateDraftRejectsForeignBooking(t *testing.T) {
	booking := newTestBooking(uuid.New())
	svc := NewService(newFakeRepository(), &fakeBookingSource{booking: booking}, nil)

	_, err := svc.CreateDraft(context.Background(), uuid.New(), &CreateContractRequest{BookingID: booking.ID.String()})
	assert.ErrorIs(t, err, bookings.ErrNotOwner)
}

func TestSendContract(t *testing.T) {
	userID := uuid.New()
	booking := newTestBooking(userID)
	notifier := &fakeNotifier{}
	svc := NewService(newFakeRepository(), &fakeBookingSource{booking: booking}, notifier)

	contract, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{
		BookingID:   booking.ID.String(),
		ClientEmail: "sarah@example.com",
	})
	require.NoError(t, err)

	sent, err := svc.SendContract(context.Background(), userID, contract.ID)
	require.NoError(t, err)

	assert.Equal(t, StatusSent, sent.Status)
	assert.NotEmpty(t, sent.SigningToken)
	assert.NotNil(t, sent.SentAt)
	assert.Equal(t, []uuid.UUID{contract.ID}, notifier.ready)
}

func TestSendContractRequiresClientEmail(t *testing.T) {
	userID := uuid.New()
	booking := newTestBooking(userID)
	svc := NewService(newFakeRepository(), &fakeBookingSource{booking: booking}, nil)

	contract, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{BookingID: booking.ID.String()})
	require.NoError(t, err)

	_, err = svc.SendContract(context.Background(), userID, contract.ID)
	assert.ErrorIs(t, err, ErrMissingClientEmail)
}

func TestResendKeepsToken(t *testing.T) {
	userID := uuid.New()
	booking := newTestBooking(userID)
	svc := NewService(newFakeRepository(), &fakeBookingSource{booking: booking}, nil)

	contract, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{
		BookingID:   booking.ID.String(),
		ClientEmail: "sarah@example.com",
	})
	require.NoError(t, err)

	first, err := svc.SendContract(context.Background(), userID, contract.ID)
	require.NoError(t, err)

	second, err := svc.SendContract(context.Background(), userID, contract.ID)
	require.NoError(t, err)

	assert.Equal(t, first.SigningToken, second.SigningToken)
}

func TestSignByTokenConfirmsBooking(t *testing.T) {
	userID := uuid.New()
	booking := newTestBooking(userID)
	source := &fakeBookingSource{booking: booking}
	notifier := &fakeNotifier{}
	svc := NewService(newFakeRepository(), source, notifier)

	contract, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{
		BookingID:   booking.ID.String(),
		ClientEmail: "sarah@example.com",
	})
	require.NoError(t, err)

	sent, err := svc.SendContract(context.Background(), userID, contract.ID)
	require.NoError(t, err)

	signed, err := svc.SignByToken(context.Background(), sent.SigningToken, &SignContractRequest{
		SignatureName: "Sarah Mitchell",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusSigned, signed.Status)
	assert.Equal(t, "Sarah Mitchell", signed.SignatureName)
	assert.NotNil(t, signed.SignedAt)
	assert.Equal(t, []bookings.Status{bookings.StatusConfirmed}, source.transitions)
	assert.Equal(t, []uuid.UUID{contract.ID}, notifier.signed)
}

func TestSignByTokenTwiceFails(t *testing.T) {
	userID := uuid.New()
	booking := newTestBooking(userID)
	svc := NewService(newFakeRepository(), &fakeBookingSource{booking: booking}, nil)

	contract, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{
		BookingID:   booking.ID.String(),
		ClientEmail: "sarah@example.com",
	})
	require.NoError(t, err)

	sent, err := svc.SendContract(context.Background(), userID, contract.ID)
	require.NoError(t, err)

	_, err = svc.SignByToken(context.Background(), sent.SigningToken, &SignContractRequest{SignatureName: "Sarah Mitchell"})
	require.NoError(t, err)

	_, err = svc.SignByToken(context.Background(), sent.SigningToken, &SignContractRequest{SignatureName: "Sarah Mitchell"})
	assert.ErrorIs(t, err, ErrAlreadySigned)
}

func TestSignByTokenSurvivesTransitionFailure(t *testing.T) {
	userID := uuid.New()
	booking := newTestBooking(userID)
	source := &fakeBookingSource{booking: booking, fail: bookings.ErrInvalidTransition}
	svc := NewService(newFakeRepository(), source, nil)

	contract, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{
		BookingID:   booking.ID.String(),
		ClientEmail: "sarah@example.com",
	})
	require.NoError(t, err)

	sent, err := svc.SendContract(context.Background(), userID, contract.ID)
	require.NoError(t, err)

	signed, err := svc.SignByToken(context.Background(), sent.SigningToken, &SignContractRequest{SignatureName: "Sarah Mitchell"})
	require.NoError(t, err)
	assert.Equal(t, StatusSigned, signed.Status)
}

func TestSignByTokenUnknownToken(t *testing.T) {
	svc := NewService(newFakeRepository(), &fakeBookingSource{}, nil)

	_, err := svc.SignByToken(context.Background(), "nope", &SignContractRequest{SignatureName: "Anyone"})
	assert.ErrorIs(t, err, ErrContractNotFound)
}

func TestGetContractOwnership(t *testing.T) {
	userID := uuid.New()
	booking := newTestBooking(userID)
	svc := NewService(newFakeRepository(), &fakeBookingSource{booking: booking}, nil)

	contract, err := svc.CreateDraft(context.Background(), userID, &CreateContractRequest{BookingID: booking.ID.String()})
	require.NoError(t, err)

	_, err = svc.GetContract(context.Background(), uuid.New(), contract.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}
