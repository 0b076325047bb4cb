package directory

import (
	"context"
	"fmt"
	"net/http"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const restaurantService = "restaurant-service"

type restaurantDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type menuItemDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
}

// RestaurantClient calls the restaurant service's REST API.
type RestaurantClient struct {
	baseURL string
	client  *http.Client
}

// NewRestaurantClient creates a client for the restaurant service at the
// given base URL.
func NewRestaurantClient(baseURL string) *RestaurantClient {
	return &RestaurantClient{
		baseURL: baseURL,
		client:  newHTTPClient(),
	}
}

// GetRestaurant fetches a restaurant by id.
func (c *RestaurantClient) GetRestaurant(ctx context.Context, id kernel.UUID) (ports.Restaurant, error) {
	var dto restaurantDTO

	url := fmt.Sprintf("%s/api/v1/restaurants/%s", c.baseURL, id.String())
	found, err := getJSON(ctx, c.client, restaurantService, url, &dto)
	if err != nil {
		return ports.Restaurant{}, err
	}
	if !found {
		return ports.Restaurant{}, errs.NewObjectNotFoundError("restaurant", id)
	}

	restaurantID, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return ports.Restaurant{}, errs.NewUpstreamUnavailableError(restaurantService, err)
	}

	return ports.Restaurant{
		ID:     restaurantID,
		Name:   dto.Name,
		Active: dto.Active,
	}, nil
}

// GetMenuItem fetches a menu item by id.
func (c *RestaurantClient) GetMenuItem(ctx context.Context, id kernel.UUID) (ports.MenuItem, error) {
	var dto menuItemDTO

	url := fmt.Sprintf("%s/api/v1/menu-items/%s", c.baseURL, id.String())
	found, err := getJSON(ctx, c.client, restaurantService, url, &dto)
	if err != nil {
		return ports.MenuItem{}, err
	}
	if !found {
		return ports.MenuItem{}, errs.NewObjectNotFoundError("menuItem", id)
	}

	menuItemID, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return ports.MenuItem{}, errs.NewUpstreamUnavailableError(restaurantService, err)
	}

	return ports.MenuItem{
		ID:        menuItemID,
		Name:      dto.Name,
		Price:     dto.Price,
		Available: dto.Available,
	}, nil
}
