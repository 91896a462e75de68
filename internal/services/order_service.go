package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"ecommerce-backend/internal/domain"
	rabbit "ecommerce-backend/internal/infra/rabbitmq"
	"ecommerce-backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

type OrderService struct {
	orders      repository.OrderRepository
	carts       repository.CartRepository
	products    repository.ProductRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, products repository.ProductRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		products:  products,
		publisher: pub,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// PlaceOrder converts the user's cart into an immutable order. Stock is
// re-validated against current product records, then the order insert,
// stock decrements and cart clear commit as one transaction, so a failure
// leaves no partial state behind.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, address domain.ShippingAddress) (*domain.Order, error) {
	cart, err := s.carts.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, domain.E(domain.KindCartEmpty, "your cart is empty")
	}

	var stockErrors []string
	orderItems := make([]domain.OrderItem, 0, len(cart.Items))
	decrements := make([]repository.StockDecrement, 0, len(cart.Items))
	cachedSlugs := make([]string, 0, len(cart.Items))

	for _, item := range cart.Items {
		product, err := s.products.FindByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			stockErrors = append(stockErrors, fmt.Sprintf("product %d is no longer available", item.ProductID))
			continue
		}
		if product.Stock < item.Quantity {
			stockErrors = append(stockErrors, fmt.Sprintf("insufficient stock for %s", product.Name))
			continue
		}

		// snapshot the cart line price, not the live product price
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     product.FirstImage(),
		})
		decrements = append(decrements, repository.StockDecrement{
			ProductID: product.ID,
			Quantity:  item.Quantity,
		})
		cachedSlugs = append(cachedSlugs, product.Slug)
	}
	if len(stockErrors) > 0 {
		return nil, domain.E(domain.KindInsufficientStock, strings.Join(stockErrors, ", "))
	}

	subtotal := cart.Subtotal
	tax := subtotal.Mul(taxRate)
	shipping := flatShipping
	total := subtotal.Add(tax).Add(shipping)

	order := &domain.Order{
		UserID:          userID,
		OrderNumber:     GenerateOrderNumber(),
		Items:           orderItems,
		ShippingAddress: address,
		Subtotal:        subtotal,
		Tax:             tax,
		Shipping:        shipping,
		Total:           total,
		Status:          domain.StatusPending,
	}

	if err := s.orders.Place(ctx, order, cart.ID, decrements); err != nil {
		if domain.IsKind(err, domain.KindInsufficientStock) {
			return nil, err
		}
		return nil, domain.WrapErr(domain.KindOrderProcessingFailed, "order processing failed", err)
	}

	s.invalidateProductCache(ctx, cachedSlugs)
	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

func (s *OrderService) GetMyOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	return s.orders.FindByUser(userID)
}

// GetOrderById is owner-scoped: an order belonging to someone else is
// indistinguishable from a missing one.
func (s *OrderService) GetOrderById(ctx context.Context, userID, orderID uint) (*domain.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, domain.E(domain.KindNotFound, "order not found")
	}
	return order, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.FindAll()
}

// UpdateStatus sets the order status and stamps the matching timestamp for
// Paid/Shipped/Delivered. Re-setting the same status re-stamps it.
// Transitions are deliberately unconstrained beyond the five known values.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.Ef(domain.KindInvalidArgument, "unknown order status %q", status)
	}

	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.E(domain.KindNotFound, "order not found")
	}

	order.Status = status
	now := time.Now()
	switch status {
	case domain.StatusPaid:
		order.PaidAt = &now
	case domain.StatusShipped:
		order.ShippedAt = &now
	case domain.StatusDelivered:
		order.DeliveredAt = &now
	}

	if err := s.orders.Save(order); err != nil {
		return nil, err
	}

	go s.publishStatusChanged(context.Background(), order)

	return order, nil
}

// invalidateProductCache drops the slug-keyed cache entries for the ordered
// products so the next public read sees the decremented stock.
func (s *OrderService) invalidateProductCache(ctx context.Context, slugs []string) {
	if s.redisClient == nil {
		return
	}
	keys := make([]string, 0, len(slugs))
	for _, sl := range slugs {
		keys = append(keys, productCacheKey(sl))
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate product cache: %v", err)
	}
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Total:       order.Total,
		ItemCount:   len(order.Items),
		CreatedAt:   order.CreatedAt,
	}

	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("Failed to publish order.created: %v", err)
	}
}

func (s *OrderService) publishStatusChanged(ctx context.Context, order *domain.Order) {
	evt := domain.OrderStatusChangedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		ChangedAt:   time.Now(),
	}

	if err := s.publisher.Publish(ctx, "order.status_changed", evt); err != nil {
		log.Printf("Failed to publish order.status_changed: %v", err)
	}
}
