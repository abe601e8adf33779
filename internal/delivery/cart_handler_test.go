package delivery_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cart_service/internal/delivery"
	"cart_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeCartUseCase struct {
	cart    []domain.Product
	added   []int
	removed []int
	updated map[int]int
}

func (f *fakeCartUseCase) Cart() []domain.Product { return f.cart }

func (f *fakeCartUseCase) AddProduct(ctx context.Context, productID int) {
	f.added = append(f.added, productID)
}

func (f *fakeCartUseCase) RemoveProduct(productID int) {
	f.removed = append(f.removed, productID)
}

func (f *fakeCartUseCase) UpdateProductAmount(ctx context.Context, productID int, amount int) {
	if f.updated == nil {
		f.updated = make(map[int]int)
	}
	f.updated[productID] = amount
}

func (f *fakeCartUseCase) Subscribe(fn func([]domain.Product)) {}

func newTestRouter(uc domain.CartUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router := gin.New()
	delivery.NewCartHandler(uc, logger).RegisterRoutes(router)
	return router
}

func TestGetCart(t *testing.T) {
	uc := &fakeCartUseCase{cart: []domain.Product{{ID: 1, Name: "Shoe", Price: 99.9, Amount: 2}}}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string           `json:"Status"`
		Data   []domain.Product `json:"Data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Success", resp.Status)
	require.Equal(t, uc.cart, resp.Data)
}

func TestAddProduct_InvokesUseCase(t *testing.T) {
	uc := &fakeCartUseCase{}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/products/5", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []int{5}, uc.added)
}

func TestAddProduct_InvalidID(t *testing.T) {
	uc := &fakeCartUseCase{}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/products/abc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, uc.added)
}

func TestRemoveProduct_InvokesUseCase(t *testing.T) {
	uc := &fakeCartUseCase{}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart/products/3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []int{3}, uc.removed)
}

func TestUpdateProductAmount_InvokesUseCase(t *testing.T) {
	uc := &fakeCartUseCase{}
	router := newTestRouter(uc)

	body := bytes.NewBufferString(`{"amount": 4}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cart/products/2", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, map[int]int{2: 4}, uc.updated)
}

func TestUpdateProductAmount_MissingAmount(t *testing.T) {
	uc := &fakeCartUseCase{}
	router := newTestRouter(uc)

	body := bytes.NewBufferString(`{}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cart/products/2", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, uc.updated)
}
