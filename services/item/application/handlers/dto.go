package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/item/application/services"
	"github.com/ghuser/stockroom/services/item/domain/models"
)

// ItemRequest is the request body for POST /api/items and PUT /api/items/{id}.
type ItemRequest struct {
	Name        string          `json:"name"        validate:"required,max=255" example:"Notebook"`
	Description string          `json:"description" validate:"max=2000"         example:"A5 dotted, 120 pages"`
	Price       decimal.Decimal `json:"price"       validate:"gte=0,lte=9999999999.99" example:"4.50" swaggertype:"string"`
	Stock       int             `json:"stock"       validate:"gte=0,lte=2147483647"    example:"25"`
	Type        string          `json:"type"        validate:"omitempty,oneof=General Electronics Grocery Clothing Stationery" example:"Stationery"`
} // @name ItemRequest

func (r *ItemRequest) input() appsvcs.ItemInput {
	return appsvcs.ItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Type:        r.Type,
	}
}

// ItemResponse is the JSON representation of an item.
type ItemResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Notebook"`
	Description string    `json:"description" example:"A5 dotted, 120 pages"`
	Price       string    `json:"price"       example:"4.50"`
	Stock       int       `json:"stock"       example:"25"`
	Type        string    `json:"type"        example:"Stationery"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at"  example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

func toResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name.String(),
		Description: item.Description,
		Price:       item.Price.StringFixed(2),
		Stock:       item.Stock,
		Type:        item.Type.String(),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// CreatedResponse is returned by POST /api/items.
type CreatedResponse struct {
	Success bool      `json:"success" example:"true"`
	ID      uuid.UUID `json:"id"      example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name CreatedResponse

// SuccessResponse is returned by PUT and DELETE.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
} // @name SuccessResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// itemID parses the {id} path parameter, writing a 400 when it is malformed.
func itemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return uuid.Nil, false
	}
	return id, true
}
