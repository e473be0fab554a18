package handler

import (
	"log/slog"
	"net/http"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"tiffin/internal/delivery/http/response"
)

// RestaurantHandler holds dependencies for restaurant-related handlers.
type RestaurantHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		uc:     uc,
		logger: logger,
	}
}

type restaurantResponse struct {
	ID             string  `json:"id"`
	RestaurantName string  `json:"restaurant_name"`
	CustomerRating float64 `json:"customer_rating"`
}

type restaurantDetailResponse struct {
	restaurantResponse
	Items []itemResponse `json:"items"`
}

func toRestaurantResponse(restaurant *entity.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:             restaurant.ID.String(),
		RestaurantName: restaurant.Name,
		CustomerRating: restaurant.CustomerRating,
	}
}

func toRestaurantResponses(restaurants []*entity.Restaurant) []restaurantResponse {
	responses := make([]restaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		responses = append(responses, toRestaurantResponse(restaurant))
	}

	return responses
}

// Restaurants handles the request to list all restaurants, best rated first.
func (h *RestaurantHandler) Restaurants(c echo.Context) error {
	restaurants, err := h.uc.RestaurantsByRating(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"restaurants": toRestaurantResponses(restaurants),
	}, "Restaurants retrieved successfully")
}

// RestaurantsByName handles the request to search restaurants by name.
func (h *RestaurantHandler) RestaurantsByName(c echo.Context) error {
	restaurants, err := h.uc.RestaurantsByName(c.Request().Context(), c.Param("restaurant_name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"restaurants": toRestaurantResponses(restaurants),
	}, "Restaurants retrieved successfully")
}

// RestaurantByID handles the request to fetch a single restaurant with its
// menu items.
func (h *RestaurantHandler) RestaurantByID(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("restaurant_id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrRestaurantNotFound)
	}

	restaurant, err := h.uc.RestaurantByID(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	detail := restaurantDetailResponse{
		restaurantResponse: toRestaurantResponse(restaurant),
		Items:              toItemResponses(restaurant.Items),
	}

	return response.Success(c, http.StatusOK, detail, "Restaurant retrieved successfully")
}
