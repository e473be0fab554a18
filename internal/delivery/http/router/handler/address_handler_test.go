package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tiffin/internal/delivery/http/middleware"
	"tiffin/internal/delivery/http/validator"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	mockUsecase "tiffin/internal/mocks/usecase"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressHandlerFixtures struct {
	handler *AddressHandler
	uc      *mockUsecase.MockAddressUsecase
}

func createTestAddressHandler(t *testing.T) addressHandlerFixtures {
	t.Helper()

	uc := mockUsecase.NewMockAddressUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return addressHandlerFixtures{
		handler: NewAddressHandler(uc, logger),
		uc:      uc,
	}
}

// newSaveAddressContext builds an Echo context the way the server does,
// with the request validator installed.
func newSaveAddressContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/address", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAddressHandler_SaveAddress_Success(t *testing.T) {
	f := createTestAddressHandler(t)
	customerID := uuid.New()
	saved := &entity.Address{ID: uuid.New(), FlatBuild: "A-101", Locality: "Koramangala", City: "Bengaluru", Pincode: "560001"}

	f.uc.EXPECT().
		SaveAddress(mock.Anything, customerID, mock.AnythingOfType("*usecase.SaveAddressInput")).
		Return(saved, nil)

	body := `{"flat_building_name":"A-101","locality":"Koramangala","city":"Bengaluru","pincode":"560001","state_uuid":"` + uuid.New().String() + `"}`
	c, rec := newSaveAddressContext(body)
	c.Set(middleware.KeyCustomerID, customerID)

	require.NoError(t, f.handler.SaveAddress(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADDRESS SUCCESSFULLY REGISTERED")
	assert.Contains(t, rec.Body.String(), saved.ID.String())
}

func TestAddressHandler_SaveAddress_OversizedFieldRejected(t *testing.T) {
	f := createTestAddressHandler(t)
	customerID := uuid.New()

	body := `{"flat_building_name":"A-101","locality":"` + strings.Repeat("x", 300) + `","city":"Bengaluru","pincode":"560001","state_uuid":"` + uuid.New().String() + `"}`
	c, _ := newSaveAddressContext(body)
	c.Set(middleware.KeyCustomerID, customerID)

	err := f.handler.SaveAddress(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())

	// The request never reaches the service.
	f.uc.AssertNotCalled(t, "SaveAddress")
}

func TestAddressHandler_SaveAddress_EmptyFieldsPassValidatorAndReachService(t *testing.T) {
	f := createTestAddressHandler(t)
	customerID := uuid.New()

	// Presence is the service's call, in its own order; the request
	// validator must wave empty fields through.
	f.uc.EXPECT().
		SaveAddress(mock.Anything, customerID, mock.AnythingOfType("*usecase.SaveAddressInput")).
		Return(nil, domainerrors.ErrAddressFieldEmpty)

	body := `{"flat_building_name":"","locality":"","city":"","pincode":"","state_uuid":"` + uuid.New().String() + `"}`
	c, _ := newSaveAddressContext(body)
	c.Set(middleware.KeyCustomerID, customerID)

	err := f.handler.SaveAddress(c)
	require.Error(t, err)
	require.ErrorIs(t, err, domainerrors.ErrAddressFieldEmpty)
}

func TestAddressHandler_SaveAddress_MissingCustomer(t *testing.T) {
	f := createTestAddressHandler(t)

	c, rec := newSaveAddressContext(`{"city":"Bengaluru"}`)

	require.NoError(t, f.handler.SaveAddress(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	f.uc.AssertNotCalled(t, "SaveAddress")
}

func TestAddressHandler_SaveAddress_BindsInputFields(t *testing.T) {
	f := createTestAddressHandler(t)
	customerID := uuid.New()
	stateID := uuid.New().String()

	var got *usecase.SaveAddressInput
	f.uc.EXPECT().
		SaveAddress(mock.Anything, customerID, mock.AnythingOfType("*usecase.SaveAddressInput")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, input *usecase.SaveAddressInput) (*entity.Address, error) {
			got = input

			return &entity.Address{ID: uuid.New()}, nil
		})

	body := `{"flat_building_name":"B-7","locality":"Indiranagar","city":"Bengaluru","pincode":"560038","state_uuid":"` + stateID + `"}`
	c, _ := newSaveAddressContext(body)
	c.Set(middleware.KeyCustomerID, customerID)

	require.NoError(t, f.handler.SaveAddress(c))
	require.NotNil(t, got)
	assert.Equal(t, "B-7", got.FlatBuild)
	assert.Equal(t, "Indiranagar", got.Locality)
	assert.Equal(t, "560038", got.Pincode)
	assert.Equal(t, stateID, got.StateID)
}
