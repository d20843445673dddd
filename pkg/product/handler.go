package product

import (
	"net/http"

	"github.com/gorilla/mux"

	"storefront/pkg/logger"
	"storefront/pkg/otel"
	"storefront/pkg/web"
)

// Handler serves the products resource.
type Handler struct {
	repo Repository
	log  *logger.Logger
}

// NewHandler returns a Handler serving the catalog in repo.
func NewHandler(repo Repository, log *logger.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Register mounts the products routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/products", h.list).Methods(http.MethodGet)
}

// list returns the catalog.
// @Summary List products
// @Produce json
// @Success 200 {array} product.Product
// @Router /products [get]
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "product.list")
	defer span.End()

	products, err := h.repo.List(ctx)
	if err != nil {
		h.log.Error(ctx, "list products", "error", err)
		web.RespondError(w, err)
		return
	}
	web.Respond(w, http.StatusOK, products)
}
