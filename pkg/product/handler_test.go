package product_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/pkg/logger"
	"storefront/pkg/product"
	"storefront/pkg/product/memory"
	"storefront/pkg/web"
)

func TestListProducts(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelInfo, "products", nil)
	r := web.NewRouter(web.RouterConfig{Service: "products", Log: log})
	product.NewHandler(memory.New(product.Seed()), log).Register(r)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id": 1, "name": "Boxing gloves"}, {"id": 2, "name": "Training shoes"}]`, rec.Body.String())
	}
}

func TestProductsHaveNoMutations(t *testing.T) {
	log := logger.New(io.Discard, logger.LevelInfo, "products", nil)
	r := web.NewRouter(web.RouterConfig{Service: "products", Log: log})
	product.NewHandler(memory.New(product.Seed()), log).Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
