package http

import (
	"net/http"

	"ecommerce-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), currentClaims(c).UserID, domain.ShippingAddress{
		Street:  req.ShippingAddress.Street,
		City:    req.ShippingAddress.City,
		State:   req.ShippingAddress.State,
		Zip:     req.ShippingAddress.Zip,
		Country: req.ShippingAddress.Country,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, order, "Order placed")
}

func (h *Handler) GetMyOrders(c *gin.Context) {
	orders, err := h.orders.GetMyOrders(c.Request.Context(), currentClaims(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *Handler) GetOrderById(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetOrderById(c.Request.Context(), currentClaims(c).UserID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, order)
}

func (h *Handler) GetAllOrders(c *gin.Context) {
	orders, err := h.orders.GetAllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), orderID, domain.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, order, "Order status updated")
}
