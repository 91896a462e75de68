package http

import (
	"net/http"
	"strconv"

	"ecommerce-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	auth       *services.AuthService
	products   *services.ProductService
	categories *services.CategoryService
	carts      *services.CartService
	orders     *services.OrderService
}

func NewHandler(auth *services.AuthService, products *services.ProductService, categories *services.CategoryService, carts *services.CartService, orders *services.OrderService) *Handler {
	return &Handler{
		auth:       auth,
		products:   products,
		categories: categories,
		carts:      carts,
		orders:     orders,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	api.GET("/products", h.GetAllProducts)
	api.GET("/products/:slug", h.GetProductBySlug)
	api.GET("/categories", h.GetAllCategories)
	api.GET("/categories/:slug", h.GetCategoryBySlug)

	protected := api.Group("", AuthRequired(h.auth))
	protected.GET("/cart", h.GetCart)
	protected.POST("/cart/items", h.AddCartItem)
	protected.PUT("/cart/items/:itemId", h.UpdateCartItem)
	protected.DELETE("/cart/items/:itemId", h.RemoveCartItem)
	protected.DELETE("/cart", h.ClearCart)

	protected.POST("/orders", h.PlaceOrder)
	protected.GET("/orders", h.GetMyOrders)
	protected.GET("/orders/:id", h.GetOrderById)

	admin := api.Group("/admin", AuthRequired(h.auth), AdminRequired())
	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
	admin.POST("/categories", h.CreateCategory)
	admin.PUT("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)
	admin.GET("/orders", h.GetAllOrders)
	admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		respondBindError(c, err)
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"user": user, "token": token})
}
