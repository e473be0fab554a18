package impl

import (
	"context"
	"testing"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	mockRepo "tiffin/internal/mocks/repository"
	mockService "tiffin/internal/mocks/service"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service   usecase.AddressUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	publisher *mockService.MockEventPublisher
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	publisher := mockService.NewMockEventPublisher(t)
	service := NewAddressService(txManager, publisher, newDiscardLogger())

	return addressServiceFixtures{
		service:   service,
		txManager: txManager,
		factory:   factory,
		publisher: publisher,
	}
}

// onExecute makes the mocked transaction manager behave like a real one:
// it runs the callback against the shared mock factory and propagates the
// callback's error.
func (f addressServiceFixtures) onExecute(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func validSaveInput(stateID uuid.UUID) *usecase.SaveAddressInput {
	return &usecase.SaveAddressInput{
		FlatBuild: "12",
		Locality:  "MG Road",
		City:      "Bangalore",
		Pincode:   "560001",
		StateID:   stateID.String(),
	}
}

func TestAddressService_SaveAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	stateID := uuid.New()
	state := &entity.State{ID: stateID, Name: "Karnataka"}

	stateRepo := mockRepo.NewMockStateRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().StateRepo().Return(stateRepo)
	fx.factory.EXPECT().AddressRepo().Return(addressRepo)

	stateRepo.EXPECT().FindByID(ctx, stateID).Return(state, nil)
	addressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	addressRepo.EXPECT().LinkCustomer(ctx, customerID, mock.AnythingOfType("uuid.UUID")).
		Return(&entity.CustomerAddress{CustomerID: customerID}, nil)
	fx.publisher.EXPECT().PublishAddressEvent(ctx, mock.AnythingOfType("*service.AddressEvent")).Return(nil)

	address, err := fx.service.SaveAddress(ctx, customerID, validSaveInput(stateID))

	require.NoError(t, err)
	require.NotNil(t, address)
	assert.NotEqual(t, uuid.Nil, address.ID)
	assert.Equal(t, "560001", address.Pincode)
	require.NotNil(t, address.State)
	assert.Equal(t, "Karnataka", address.State.Name)
}

func TestAddressService_SaveAddress_StateNotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	stateID := uuid.New()

	stateRepo := mockRepo.NewMockStateRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().StateRepo().Return(stateRepo)
	fx.factory.EXPECT().AddressRepo().Return(mockRepo.NewMockAddressRepository(t))
	stateRepo.EXPECT().FindByID(ctx, stateID).Return(nil, repository.ErrStateNotFound)

	// State resolution happens before field checks, so the state failure wins
	// even though the candidate fields are empty too.
	input := &usecase.SaveAddressInput{StateID: stateID.String()}

	address, err := fx.service.SaveAddress(ctx, customerID, input)

	require.Error(t, err)
	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrStateNotFound)
}

func TestAddressService_SaveAddress_EmptyFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *usecase.SaveAddressInput)
	}{
		{name: "empty flat building", mutate: func(in *usecase.SaveAddressInput) { in.FlatBuild = "" }},
		{name: "empty locality", mutate: func(in *usecase.SaveAddressInput) { in.Locality = "" }},
		{name: "empty city", mutate: func(in *usecase.SaveAddressInput) { in.City = "" }},
		{name: "empty pincode", mutate: func(in *usecase.SaveAddressInput) { in.Pincode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAddressService(t)

			ctx := context.Background()
			stateID := uuid.New()
			state := &entity.State{ID: stateID, Name: "Karnataka"}

			stateRepo := mockRepo.NewMockStateRepository(t)

			fx.onExecute(ctx)
			fx.factory.EXPECT().StateRepo().Return(stateRepo)
			fx.factory.EXPECT().AddressRepo().Return(mockRepo.NewMockAddressRepository(t))
			stateRepo.EXPECT().FindByID(ctx, stateID).Return(state, nil)

			input := validSaveInput(stateID)
			tt.mutate(input)

			address, err := fx.service.SaveAddress(ctx, uuid.New(), input)

			require.Error(t, err)
			assert.Nil(t, address)
			assert.ErrorIs(t, err, domainerrors.ErrAddressFieldEmpty)
		})
	}
}

func TestAddressService_SaveAddress_InvalidPincode(t *testing.T) {
	tests := []string{"12345", "1234567", "12345a", " 123456", "123456 ", "12-456"}

	for _, pincode := range tests {
		t.Run(pincode, func(t *testing.T) {
			fx := createTestAddressService(t)

			ctx := context.Background()
			stateID := uuid.New()
			state := &entity.State{ID: stateID, Name: "Karnataka"}

			stateRepo := mockRepo.NewMockStateRepository(t)

			fx.onExecute(ctx)
			fx.factory.EXPECT().StateRepo().Return(stateRepo)
			fx.factory.EXPECT().AddressRepo().Return(mockRepo.NewMockAddressRepository(t))
			stateRepo.EXPECT().FindByID(ctx, stateID).Return(state, nil)

			input := validSaveInput(stateID)
			input.Pincode = pincode

			address, err := fx.service.SaveAddress(ctx, uuid.New(), input)

			require.Error(t, err)
			assert.Nil(t, address)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidPincode)
		})
	}
}

func TestAddressService_SaveAddress_LinkFailureAborts(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	stateID := uuid.New()
	state := &entity.State{ID: stateID, Name: "Karnataka"}

	stateRepo := mockRepo.NewMockStateRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().StateRepo().Return(stateRepo)
	fx.factory.EXPECT().AddressRepo().Return(addressRepo)

	stateRepo.EXPECT().FindByID(ctx, stateID).Return(state, nil)
	addressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)
	addressRepo.EXPECT().LinkCustomer(ctx, customerID, mock.AnythingOfType("uuid.UUID")).
		Return(nil, assert.AnError)

	// The transaction callback fails, so no address is returned and no event
	// is published.
	address, err := fx.service.SaveAddress(ctx, customerID, validSaveInput(stateID))

	require.Error(t, err)
	assert.Nil(t, address)
	assert.Contains(t, err.Error(), "failed to link customer to address")
}

func TestAddressService_ListAddresses_NewestFirst(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()

	first := &entity.Address{ID: uuid.New(), Pincode: "560001"}
	second := &entity.Address{ID: uuid.New(), Pincode: "560002"}
	third := &entity.Address{ID: uuid.New(), Pincode: "560003"}

	addressRepo := mockRepo.NewMockAddressRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().AddressRepo().Return(addressRepo)
	addressRepo.EXPECT().FindAddressesByCustomer(ctx, customerID).
		Return([]*entity.Address{first, second, third}, nil)

	addresses, err := fx.service.ListAddresses(ctx, customerID)

	require.NoError(t, err)
	require.Len(t, addresses, 3)
	assert.Equal(t, third, addresses[0])
	assert.Equal(t, second, addresses[1])
	assert.Equal(t, first, addresses[2])
}

func TestAddressService_ListAddresses_Empty(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()

	addressRepo := mockRepo.NewMockAddressRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().AddressRepo().Return(addressRepo)
	addressRepo.EXPECT().FindAddressesByCustomer(ctx, customerID).
		Return([]*entity.Address{}, nil)

	addresses, err := fx.service.ListAddresses(ctx, customerID)

	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestAddressService_GetOwnedAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	address := &entity.Address{ID: addressID, Pincode: "560001"}

	addressRepo := mockRepo.NewMockAddressRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().AddressRepo().Return(addressRepo)
	addressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)
	addressRepo.EXPECT().FindLinkByAddress(ctx, addressID).
		Return(&entity.CustomerAddress{CustomerID: customerID, AddressID: addressID}, nil)

	got, err := fx.service.GetOwnedAddress(ctx, addressID.String(), customerID)

	require.NoError(t, err)
	assert.Equal(t, address, got)
}

func TestAddressService_GetOwnedAddress_EmptyID(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()

	fx.onExecute(ctx)

	got, err := fx.service.GetOwnedAddress(ctx, "", uuid.New())

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrAddressIDEmpty)
}

func TestAddressService_GetOwnedAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()

	addressRepo := mockRepo.NewMockAddressRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().AddressRepo().Return(addressRepo)
	addressRepo.EXPECT().FindByID(ctx, addressID).Return(nil, repository.ErrAddressNotFound)

	got, err := fx.service.GetOwnedAddress(ctx, addressID.String(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_GetOwnedAddress_Forbidden(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()
	addressID := uuid.New()
	address := &entity.Address{ID: addressID, Pincode: "560001"}

	addressRepo := mockRepo.NewMockAddressRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().AddressRepo().Return(addressRepo)
	addressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)
	addressRepo.EXPECT().FindLinkByAddress(ctx, addressID).
		Return(&entity.CustomerAddress{CustomerID: owner, AddressID: addressID}, nil)

	got, err := fx.service.GetOwnedAddress(ctx, addressID.String(), intruder)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestAddressService_DeleteAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	addressID := uuid.New()
	address := &entity.Address{ID: addressID, City: "Bangalore", Pincode: "560001"}

	addressRepo := mockRepo.NewMockAddressRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().AddressRepo().Return(addressRepo)
	addressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)
	addressRepo.EXPECT().FindLinkByAddress(ctx, addressID).
		Return(&entity.CustomerAddress{CustomerID: customerID, AddressID: addressID}, nil)
	addressRepo.EXPECT().Delete(ctx, addressID).Return(nil)
	fx.publisher.EXPECT().PublishAddressEvent(ctx, mock.AnythingOfType("*service.AddressEvent")).Return(nil)

	deleted, err := fx.service.DeleteAddress(ctx, addressID.String(), customerID)

	require.NoError(t, err)
	assert.Equal(t, address, deleted)
}

func TestAddressService_DeleteAddress_Forbidden(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()
	addressID := uuid.New()
	address := &entity.Address{ID: addressID}

	addressRepo := mockRepo.NewMockAddressRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().AddressRepo().Return(addressRepo)
	addressRepo.EXPECT().FindByID(ctx, addressID).Return(address, nil)
	addressRepo.EXPECT().FindLinkByAddress(ctx, addressID).
		Return(&entity.CustomerAddress{CustomerID: owner, AddressID: addressID}, nil)

	deleted, err := fx.service.DeleteAddress(ctx, addressID.String(), intruder)

	require.Error(t, err)
	assert.Nil(t, deleted)
	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestAddressService_ListStates(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	states := []*entity.State{
		{ID: uuid.New(), Name: "Karnataka"},
		{ID: uuid.New(), Name: "Maharashtra"},
	}

	stateRepo := mockRepo.NewMockStateRepository(t)

	fx.onExecute(ctx)
	fx.factory.EXPECT().StateRepo().Return(stateRepo)
	stateRepo.EXPECT().FindAll(ctx).Return(states, nil)

	got, err := fx.service.ListStates(ctx)

	require.NoError(t, err)
	assert.Equal(t, states, got)
}

// TestAddressService_SaveThenList_Scenario walks the documented end-to-end
// path: customer saves one address against Karnataka, then lists and sees
// exactly that address first.
func TestAddressService_SaveThenList_Scenario(t *testing.T) {
	fx := createTestAddressService(t)

	ctx := context.Background()
	customerID := uuid.New()
	stateID := uuid.New()
	state := &entity.State{ID: stateID, Name: "Karnataka"}

	stateRepo := mockRepo.NewMockStateRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	var stored []*entity.Address

	fx.onExecute(ctx)
	fx.factory.EXPECT().StateRepo().Return(stateRepo)
	fx.factory.EXPECT().AddressRepo().Return(addressRepo)

	stateRepo.EXPECT().FindByID(ctx, stateID).Return(state, nil)
	addressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).
		RunAndReturn(func(_ context.Context, address *entity.Address) error {
			stored = append(stored, address)
			return nil
		})
	addressRepo.EXPECT().LinkCustomer(ctx, customerID, mock.AnythingOfType("uuid.UUID")).
		Return(&entity.CustomerAddress{CustomerID: customerID}, nil)
	addressRepo.EXPECT().FindAddressesByCustomer(ctx, customerID).
		RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.Address, error) {
			return stored, nil
		})
	fx.publisher.EXPECT().PublishAddressEvent(ctx, mock.AnythingOfType("*service.AddressEvent")).Return(nil)

	saved, err := fx.service.SaveAddress(ctx, customerID, validSaveInput(stateID))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, "Karnataka", saved.State.Name)

	addresses, err := fx.service.ListAddresses(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, saved.ID, addresses[0].ID)
	assert.Equal(t, "560001", addresses[0].Pincode)
}
