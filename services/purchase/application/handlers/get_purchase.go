package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/purchase/application/services"
)

// GetPurchaseHandler handles GET /api/purchases/{id}.
type GetPurchaseHandler struct {
	svc *appsvcs.Services
}

// NewGetPurchaseHandler returns a GetPurchaseHandler backed by the given services.
func NewGetPurchaseHandler(svc *appsvcs.Services) *GetPurchaseHandler {
	return &GetPurchaseHandler{svc: svc}
}

// Execute returns one purchase.
//
//	@Summary	Get purchase
//	@Tags		purchases
//	@Produce	json
//	@Param		id	path		string	true	"Purchase ID"	format(uuid)
//	@Success	200	{object}	PurchaseResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/purchases/{id} [get]
func (h *GetPurchaseHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}

	p, err := h.svc.Purchase.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(p))
}
