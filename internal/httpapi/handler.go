package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

type handler struct {
	deps   Deps
	logger *zap.Logger
}

type cartView struct {
	Items []domain.LineItem `json:"items"`
	Total domain.Money      `json:"total"`
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	Shipping      domain.ShippingForm  `json:"shipping"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

type cancelOrdersRequest struct {
	OrderIDs []uuid.UUID `json:"orderIds"`
}

type cancelOrdersResponse struct {
	Canceled []uuid.UUID `json:"canceled"`
}

func (h *handler) health(c *gin.Context) {
	if h.deps.Ready != nil {
		if err := h.deps.Ready(c.Request.Context()); err != nil {
			h.logger.Warn("health check failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, Response{
				Status:  statusError,
				Message: "unavailable",
			})
			return
		}
	}

	respond(c, http.StatusOK, "ok", nil)
}

func (h *handler) listCategories(c *gin.Context) {
	categories, err := h.deps.Catalog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "", categories)
}

func (h *handler) listProducts(c *gin.Context) {
	categoryID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	products, err := h.deps.Catalog.Products(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "", products)
}

func (h *handler) getProduct(c *gin.Context) {
	productID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.deps.Catalog.Product(c.Request.Context(), productID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "", product)
}

func (h *handler) getCart(c *gin.Context) {
	h.respondCart(c, "")
}

func (h *handler) addCartItem(c *gin.Context) {
	var req addItemRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.deps.Cart.Add(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondCart(c, "added to cart")
}

func (h *handler) setCartItemQuantity(c *gin.Context) {
	productID, ok := h.pathID(c, "productId")
	if !ok {
		return
	}

	var req setQuantityRequest
	if !h.bind(c, &req) {
		return
	}

	if err := h.deps.Cart.SetQuantity(c.Request.Context(), productID, req.Quantity); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondCart(c, "")
}

func (h *handler) removeCartItem(c *gin.Context) {
	productID, ok := h.pathID(c, "productId")
	if !ok {
		return
	}

	if err := h.deps.Cart.Remove(c.Request.Context(), productID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondCart(c, "")
}

func (h *handler) clearCart(c *gin.Context) {
	if err := h.deps.Cart.Clear(c.Request.Context()); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondCart(c, "")
}

func (h *handler) quote(c *gin.Context) {
	quote, err := h.deps.Checkout.Preview(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "", quote)
}

func (h *handler) placeOrder(c *gin.Context) {
	var req checkoutRequest
	if !h.bind(c, &req) {
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = domain.PaymentMethodCashOnDelivery
	}

	order, err := h.deps.Checkout.PlaceOrder(c.Request.Context(), req.Shipping, req.PaymentMethod)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusCreated, "order placed", order)
}

func (h *handler) listOrders(c *gin.Context) {
	orders, err := h.deps.Orders.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "", orders)
}

func (h *handler) cancelOrders(c *gin.Context) {
	var req cancelOrdersRequest
	if !h.bind(c, &req) {
		return
	}

	canceled, err := h.deps.Orders.Cancel(c.Request.Context(), req.OrderIDs)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if canceled == nil {
		canceled = []uuid.UUID{}
	}

	respond(c, http.StatusOK, "", cancelOrdersResponse{Canceled: canceled})
}

func (h *handler) getProfile(c *gin.Context) {
	customer, err := h.deps.Profile.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "", customer)
}

func (h *handler) updatePersonal(c *gin.Context) {
	var req domain.PersonalDetails
	if !h.bind(c, &req) {
		return
	}

	customer, err := h.deps.Profile.UpdatePersonal(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "profile updated", customer)
}

func (h *handler) updateShipping(c *gin.Context) {
	var req domain.ShippingDetails
	if !h.bind(c, &req) {
		return
	}

	customer, err := h.deps.Profile.UpdateShipping(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	respond(c, http.StatusOK, "shipping details updated", customer)
}

func (h *handler) respondCart(c *gin.Context, message string) {
	items, total, err := h.deps.Cart.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if items == nil {
		items = []domain.LineItem{}
	}

	respond(c, http.StatusOK, message, cartView{Items: items, Total: total})
}

func (h *handler) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, h.logger, domain.NewValidationError(name, "must be a valid UUID"))
		return uuid.Nil, false
	}

	return id, true
}

func (h *handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, Response{
			Status:  statusError,
			Message: "malformed request body",
		})
		return false
	}

	return true
}
