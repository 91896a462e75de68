package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.carts.GetCart(c.Request.Context(), currentClaims(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, cart)
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), currentClaims(c).UserID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, cart, "Item added to cart")
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := h.carts.UpdateItemQuantity(c.Request.Context(), currentClaims(c).UserID, itemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, cart, "Item quantity updated")
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	cart, err := h.carts.RemoveItem(c.Request.Context(), currentClaims(c).UserID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, cart, "Item removed from cart")
}

func (h *Handler) ClearCart(c *gin.Context) {
	cart, err := h.carts.ClearCart(c.Request.Context(), currentClaims(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, cart, "Cart cleared")
}
