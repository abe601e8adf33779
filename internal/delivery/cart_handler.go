package delivery

import (
	"net/http"
	"strconv"

	"cart_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CartHandler exposes the cart surface over HTTP. The cart use case absorbs
// every operation failure internally (it only notifies), so mutating handlers
// always answer with the post-operation snapshot; the UI learns about rejected
// mutations through the notification sink, not through HTTP status codes.
type CartHandler struct {
	useCase domain.CartUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc domain.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/products/:id", h.AddProduct)
		cart.DELETE("/products/:id", h.RemoveProduct)
		cart.PATCH("/products/:id", h.UpdateProductAmount)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", h.useCase.Cart())
}

func (h *CartHandler) AddProduct(c *gin.Context) {
	productID, ok := h.productIDParam(c)
	if !ok {
		return
	}

	h.log.Infof("Processing add to cart request for Product ID: %d", productID)
	h.useCase.AddProduct(c.Request.Context(), productID)
	SuccessResponse(c, http.StatusOK, "Cart state returned", h.useCase.Cart())
}

func (h *CartHandler) RemoveProduct(c *gin.Context) {
	productID, ok := h.productIDParam(c)
	if !ok {
		return
	}

	h.log.Infof("Processing remove from cart request for Product ID: %d", productID)
	h.useCase.RemoveProduct(productID)
	SuccessResponse(c, http.StatusOK, "Cart state returned", h.useCase.Cart())
}

func (h *CartHandler) UpdateProductAmount(c *gin.Context) {
	productID, ok := h.productIDParam(c)
	if !ok {
		return
	}

	var requestBody struct {
		Amount *int `json:"amount"`
	}
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		h.log.Warnf("Failed to bind JSON for amount update (Product ID: %d): %v", productID, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if requestBody.Amount == nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: 'amount' field is required")
		return
	}

	h.log.Infof("Processing amount update request for Product ID: %d (amount: %d)", productID, *requestBody.Amount)
	h.useCase.UpdateProductAmount(c.Request.Context(), productID, *requestBody.Amount)
	SuccessResponse(c, http.StatusOK, "Cart state returned", h.useCase.Cart())
}

func (h *CartHandler) productIDParam(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return 0, false
	}
	return id, true
}
