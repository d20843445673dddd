package order

import (
	"net/http"

	"github.com/gorilla/mux"

	"storefront/pkg/logger"
	"storefront/pkg/otel"
	"storefront/pkg/web"
)

// Handler serves the orders resource.
type Handler struct {
	repo Repository
	log  *logger.Logger
}

// NewHandler returns a Handler that places orders in repo.
func NewHandler(repo Repository, log *logger.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Register mounts the orders routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/orders/create", h.create).Methods(http.MethodPost)
}

// create places a new order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body order.CreateRequest true "Order"
// @Success 201 {object} order.Order
// @Failure 400 {object} map[string]string
// @Router /orders/create [post]
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "order.create")
	defer span.End()

	var req CreateRequest
	if err := web.Decode(r, &req); err != nil {
		h.log.Debug(ctx, "create order rejected", "error", err)
		web.RespondError(w, err)
		return
	}
	o, err := h.repo.Create(ctx, *req.ProductID, *req.Quantity)
	if err != nil {
		h.log.Error(ctx, "create order", "error", err)
		web.RespondError(w, err)
		return
	}
	web.Respond(w, http.StatusCreated, o)
}
