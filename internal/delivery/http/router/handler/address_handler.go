// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"tiffin/internal/delivery/http/middleware"
	"tiffin/internal/delivery/http/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address-related handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

type stateResponse struct {
	ID        string `json:"id"`
	StateName string `json:"state_name"`
}

type addressResponse struct {
	ID               string         `json:"id"`
	FlatBuildingName string         `json:"flat_building_name"`
	Locality         string         `json:"locality"`
	City             string         `json:"city"`
	Pincode          string         `json:"pincode"`
	State            *stateResponse `json:"state,omitempty"`
}

func toAddressResponse(address *entity.Address) addressResponse {
	resp := addressResponse{
		ID:               address.ID.String(),
		FlatBuildingName: address.FlatBuild,
		Locality:         address.Locality,
		City:             address.City,
		Pincode:          address.Pincode,
	}
	if address.State != nil {
		resp.State = &stateResponse{
			ID:        address.State.ID.String(),
			StateName: address.State.Name,
		}
	}

	return resp
}

// SaveAddress handles the request to register a new address for the
// authenticated customer.
func (h *AddressHandler) SaveAddress(c echo.Context) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	var input *usecase.SaveAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	// Shape checks only; the semantic validation order belongs to the service.
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.SaveAddress(c.Request().Context(), customerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"id":     address.ID.String(),
		"status": "ADDRESS SUCCESSFULLY REGISTERED",
	}, "Address saved successfully")
}

// ListAddresses handles the request to list the authenticated customer's
// addresses, newest first.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	addressResponses := make([]addressResponse, 0, len(addresses))
	for _, address := range addresses {
		addressResponses = append(addressResponses, toAddressResponse(address))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"addresses": addressResponses,
	}, "Addresses retrieved successfully")
}

// DeleteAddress handles the request to delete one of the authenticated
// customer's addresses.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid customer ID in token")
	}

	deleted, err := h.uc.DeleteAddress(c.Request().Context(), c.Param("address_id"), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":     deleted.ID.String(),
		"status": "ADDRESS DELETED SUCCESSFULLY",
	}, "Address deleted successfully")
}

// ListStates handles the request to list all states.
func (h *AddressHandler) ListStates(c echo.Context) error {
	states, err := h.uc.ListStates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	stateResponses := make([]stateResponse, 0, len(states))
	for _, state := range states {
		stateResponses = append(stateResponses, stateResponse{
			ID:        state.ID.String(),
			StateName: state.Name,
		})
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"states": stateResponses,
	}, "States retrieved successfully")
}
