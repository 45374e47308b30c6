package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockroom/pkg/validator"
	appsvcs "github.com/ghuser/stockroom/services/purchase/application/services"
)

// PostPurchaseHandler handles POST /api/purchases.
type PostPurchaseHandler struct {
	svc *appsvcs.Services
}

// NewPostPurchaseHandler returns a PostPurchaseHandler backed by the given services.
func NewPostPurchaseHandler(svc *appsvcs.Services) *PostPurchaseHandler {
	return &PostPurchaseHandler{svc: svc}
}

// Execute records a purchase and decrements stock atomically.
//
//	@Summary		Create purchase
//	@Description	Records a purchase and decrements stock for every line in one transaction. Either everything commits or nothing changes.
//	@Tags			purchases
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PurchaseRequest	true	"Purchase request"
//	@Success		201		{object}	PurchaseCreatedResponse
//	@Failure		400		{object}	ErrorResponse	"Validation failure, unknown item or insufficient stock"
//	@Failure		503		{object}	ErrorResponse	"Store unavailable or transaction timed out"
//	@Failure		500		{object}	ErrorResponse
//	@Router			/purchases [post]
func (h *PostPurchaseHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[PurchaseRequest](w, r)
	if !ok {
		return
	}

	in := appsvcs.PlaceInput{
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		Lines:           make([]appsvcs.LineInput, len(req.Items)),
	}
	for i, l := range req.Items {
		// validated as a UUID above
		in.Lines[i] = appsvcs.LineInput{ItemID: uuid.MustParse(l.ItemID), Quantity: l.Quantity}
	}

	p, err := h.svc.Purchase.Place(r.Context(), in)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, PurchaseCreatedResponse{Success: true, PurchaseID: p.ID})
}
