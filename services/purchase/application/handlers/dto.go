package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/purchase/domain/models"
)

// PurchaseLineRequest is one requested line.
type PurchaseLineRequest struct {
	ItemID   string `json:"item_id"  validate:"required,uuid" example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity int    `json:"quantity" validate:"gt=0,lte=2147483647" example:"3"`
} // @name PurchaseLineRequest

// PurchaseRequest is the request body for POST /api/purchases.
type PurchaseRequest struct {
	CustomerName    string                `json:"customer_name"    validate:"required,max=255"  example:"Ada Lovelace"`
	ShippingAddress string                `json:"shipping_address" validate:"required,max=1000" example:"12 St James's Square, London"`
	Items           []PurchaseLineRequest `json:"items"            validate:"required,min=1,dive"`
} // @name PurchaseRequest

// PurchaseCreatedResponse is returned when a purchase commits.
type PurchaseCreatedResponse struct {
	Success    bool      `json:"success"    example:"true"`
	PurchaseID uuid.UUID `json:"purchaseId" example:"9b2f7c1e-3d4a-4b5c-8e6f-0a1b2c3d4e5f"`
} // @name PurchaseCreatedResponse

// PurchaseLineResponse is one line of a purchase with its item snapshot.
type PurchaseLineResponse struct {
	ItemID   uuid.UUID `json:"item_id"  example:"123e4567-e89b-12d3-a456-426614174000"`
	Name     string    `json:"name"     example:"Notebook"`
	Price    string    `json:"price"    example:"4.50"`
	Quantity int       `json:"quantity" example:"3"`
	Type     string    `json:"type"     example:"Stationery"`
} // @name PurchaseLineResponse

// PurchaseResponse is the JSON representation of a purchase.
type PurchaseResponse struct {
	ID              uuid.UUID              `json:"id"               example:"9b2f7c1e-3d4a-4b5c-8e6f-0a1b2c3d4e5f"`
	CustomerName    string                 `json:"customer_name"    example:"Ada Lovelace"`
	ShippingAddress string                 `json:"shipping_address" example:"12 St James's Square, London"`
	CreatedAt       time.Time              `json:"created_at"       example:"2024-01-15T10:30:00Z"`
	Total           string                 `json:"total"            example:"13.50"`
	Items           []PurchaseLineResponse `json:"items"`
} // @name PurchaseResponse

// ErrorResponse is returned on all error responses. Stock errors add
// item_id, available and requested.
type ErrorResponse struct {
	Error string `json:"error" example:"Not enough stock for item \"Notebook\". Available: 2, Requested: 3"`
} // @name ErrorResponse

func toResponse(p *models.Purchase) PurchaseResponse {
	lines := make([]PurchaseLineResponse, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = PurchaseLineResponse{
			ItemID:   l.ItemID,
			Name:     l.Name,
			Price:    l.Price.StringFixed(2),
			Quantity: l.Quantity,
			Type:     l.Type,
		}
	}
	return PurchaseResponse{
		ID:              p.ID,
		CustomerName:    p.CustomerName,
		ShippingAddress: p.ShippingAddress,
		CreatedAt:       p.CreatedAt,
		Total:           p.Total().StringFixed(2),
		Items:           lines,
	}
}
