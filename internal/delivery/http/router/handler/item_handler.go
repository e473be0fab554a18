package handler

import (
	"log/slog"
	"net/http"

	"tiffin/internal/delivery/http/response"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// popularItemsLimit caps the popular-items listing at the delivery layer;
// the ranking itself is uncapped.
const popularItemsLimit = 5

// ItemHandler holds dependencies for item-related handlers.
type ItemHandler struct {
	catalogUc   usecase.CatalogUsecase
	analyticsUc usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(catalogUc usecase.CatalogUsecase, analyticsUc usecase.AnalyticsUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		catalogUc:   catalogUc,
		analyticsUc: analyticsUc,
		logger:      logger,
	}
}

type itemResponse struct {
	ID       string `json:"id"`
	ItemName string `json:"item_name"`
}

func toItemResponses(items []*entity.Item) []itemResponse {
	responses := make([]itemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemResponse{
			ID:       item.ID.String(),
			ItemName: item.Name,
		})
	}

	return responses
}

// ItemsByCategory handles the request to list the items a restaurant serves
// within one category.
func (h *ItemHandler) ItemsByCategory(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("restaurant_id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrRestaurantNotFound)
	}

	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrCategoryNotFound)
	}

	items, err := h.catalogUc.ItemsByCategoryInRestaurant(c.Request().Context(), restaurantID, categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items": toItemResponses(items),
	}, "Items retrieved successfully")
}

// PopularItems handles the request to list a restaurant's most popular items.
func (h *ItemHandler) PopularItems(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("restaurant_id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrRestaurantNotFound)
	}

	restaurant, err := h.catalogUc.RestaurantByID(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	items, err := h.analyticsUc.PopularItems(c.Request().Context(), restaurant)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(items) > popularItemsLimit {
		items = items[:popularItemsLimit]
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"items": toItemResponses(items),
	}, "Popular items retrieved successfully")
}
