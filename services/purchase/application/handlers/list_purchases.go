package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ghuser/stockroom/pkg/errhttp"
	"github.com/ghuser/stockroom/pkg/httpx"
	appsvcs "github.com/ghuser/stockroom/services/purchase/application/services"
	"github.com/ghuser/stockroom/services/purchase/domain/models"
)

const maxPageSize = 500

// ListPurchasesHandler handles GET /api/purchases.
type ListPurchasesHandler struct {
	svc *appsvcs.Services
}

// NewListPurchasesHandler returns a ListPurchasesHandler backed by the given services.
func NewListPurchasesHandler(svc *appsvcs.Services) *ListPurchasesHandler {
	return &ListPurchasesHandler{svc: svc}
}

// Execute lists purchases newest first.
//
//	@Summary		List purchases
//	@Description	Returns purchases newest first with their lines. Without parameters every purchase is returned.
//	@Tags			purchases
//	@Produce		json
//	@Param			q		query		string	false	"Customer or item name substring"
//	@Param			date	query		string	false	"UTC creation date (YYYY-MM-DD)"
//	@Param			limit	query		int		false	"Page size (max 500)"
//	@Param			offset	query		int		false	"Number of matches to skip"
//	@Success		200		{array}		PurchaseResponse
//	@Header			200		{integer}	X-Total-Count	"Matches before pagination"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/purchases [get]
func (h *ListPurchasesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	f, msg := parseFilter(r)
	if msg != "" {
		httpx.JSONError(w, http.StatusBadRequest, msg)
		return
	}

	purchases, total, err := h.svc.Purchase.List(r.Context(), f)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	out := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		out[i] = toResponse(p)
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	httpx.JSON(w, http.StatusOK, out)
}

func parseFilter(r *http.Request) (models.ListFilter, string) {
	q := r.URL.Query()
	f := models.ListFilter{Query: q.Get("q")}

	if s := q.Get("date"); s != "" {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return f, "date must be formatted as YYYY-MM-DD"
		}
		f.Date = d
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxPageSize {
			return f, "limit must be an integer between 1 and 500"
		}
		f.Limit = n
	}
	if s := q.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return f, "offset must be a non-negative integer"
		}
		f.Offset = n
	}
	return f, ""
}
