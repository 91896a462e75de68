package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/mocks"
	"ecommerce-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testAddress() domain.ShippingAddress {
	return domain.ShippingAddress{
		Street:  "1 Main St",
		City:    "Springfield",
		Country: "US",
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockOrderRepository, *mocks.MockCartRepository, *mocks.MockProductRepository, *mocks.MockPublisher)
		expectedKind string
		checkOrder   func(*testing.T, *domain.Order)
	}{
		{
			name: "successful placement snapshots the cart",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, pub *mocks.MockPublisher) {
				cartRepo.On("FindByUser", TestUserID).Return(CreateMockCart(TestCartID, TestUserID, domain.CartItem{
					ID: 10, CartID: TestCartID, ProductID: TestProductID, Quantity: 3, Price: dec("10.00"),
				}), nil)
				// live price differs from the cart line price on purpose
				product := CreateMockProduct(TestProductID, "Widget", "12.00", 5)
				product.Images = []domain.ProductImage{{URL: "widget.jpg"}}
				productRepo.On("FindByID", TestProductID).Return(product, nil)
				orderRepo.On("Place", mock.Anything, mock.AnythingOfType("*domain.Order"), TestCartID, []repository.StockDecrement{
					{ProductID: TestProductID, Quantity: 3},
				}).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Order).ID = TestOrderID
				})
				pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()
			},
			checkOrder: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, domain.StatusPending, order.Status)
				assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-[0-9A-F]{6}$`), order.OrderNumber)
				assert.Len(t, order.Items, 1)
				assert.Equal(t, "Widget", order.Items[0].Name)
				assert.Equal(t, 3, order.Items[0].Quantity)
				assert.True(t, order.Items[0].Price.Equal(dec("10.00")), "order item must carry the cart line price")
				assert.Equal(t, "widget.jpg", order.Items[0].Image)
				assert.True(t, order.Subtotal.Equal(dec("30.00")))
				assert.True(t, order.Tax.IsZero())
				assert.True(t, order.Shipping.IsZero())
				assert.True(t, order.Total.Equal(dec("30.00")))
			},
		},
		{
			name: "empty cart",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, pub *mocks.MockPublisher) {
				cartRepo.On("FindByUser", TestUserID).Return(CreateMockCart(TestCartID, TestUserID), nil)
			},
			expectedKind: domain.KindCartEmpty,
		},
		{
			name: "missing cart counts as empty",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, pub *mocks.MockPublisher) {
				cartRepo.On("FindByUser", TestUserID).Return(nil, nil)
			},
			expectedKind: domain.KindCartEmpty,
		},
		{
			name: "stock shortfall aggregates every offending line",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, pub *mocks.MockPublisher) {
				cartRepo.On("FindByUser", TestUserID).Return(CreateMockCart(TestCartID, TestUserID,
					domain.CartItem{ID: 10, CartID: TestCartID, ProductID: 1, Quantity: 3, Price: dec("10.00")},
					domain.CartItem{ID: 11, CartID: TestCartID, ProductID: 2, Quantity: 2, Price: dec("5.00")},
				), nil)
				productRepo.On("FindByID", uint(1)).Return(CreateMockProduct(1, "Widget", "10.00", 1), nil)
				productRepo.On("FindByID", uint(2)).Return(CreateMockProduct(2, "Gadget", "5.00", 0), nil)
			},
			expectedKind: domain.KindInsufficientStock,
		},
		{
			name: "transaction failure is surfaced as processing failed",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, pub *mocks.MockPublisher) {
				cartRepo.On("FindByUser", TestUserID).Return(CreateMockCart(TestCartID, TestUserID, domain.CartItem{
					ID: 10, CartID: TestCartID, ProductID: TestProductID, Quantity: 1, Price: dec("10.00"),
				}), nil)
				productRepo.On("FindByID", TestProductID).Return(CreateMockProduct(TestProductID, "Widget", "10.00", 5), nil)
				orderRepo.On("Place", mock.Anything, mock.Anything, TestCartID, mock.Anything).Return(errors.New("deadlock"))
			},
			expectedKind: domain.KindOrderProcessingFailed,
		},
		{
			name: "order number collision is a retryable processing failure",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, pub *mocks.MockPublisher) {
				cartRepo.On("FindByUser", TestUserID).Return(CreateMockCart(TestCartID, TestUserID, domain.CartItem{
					ID: 10, CartID: TestCartID, ProductID: TestProductID, Quantity: 1, Price: dec("10.00"),
				}), nil)
				productRepo.On("FindByID", TestProductID).Return(CreateMockProduct(TestProductID, "Widget", "10.00", 5), nil)
				orderRepo.On("Place", mock.Anything, mock.Anything, TestCartID, mock.Anything).
					Return(domain.E(domain.KindDuplicateField, "order number already exists"))
			},
			expectedKind: domain.KindOrderProcessingFailed,
		},
		{
			name: "race-lost decrement keeps the insufficient stock kind",
			setupMocks: func(orderRepo *mocks.MockOrderRepository, cartRepo *mocks.MockCartRepository, productRepo *mocks.MockProductRepository, pub *mocks.MockPublisher) {
				cartRepo.On("FindByUser", TestUserID).Return(CreateMockCart(TestCartID, TestUserID, domain.CartItem{
					ID: 10, CartID: TestCartID, ProductID: TestProductID, Quantity: 1, Price: dec("10.00"),
				}), nil)
				productRepo.On("FindByID", TestProductID).Return(CreateMockProduct(TestProductID, "Widget", "10.00", 5), nil)
				orderRepo.On("Place", mock.Anything, mock.Anything, TestCartID, mock.Anything).
					Return(domain.E(domain.KindInsufficientStock, "insufficient stock for product 1"))
			},
			expectedKind: domain.KindInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := new(mocks.MockOrderRepository)
			cartRepo := new(mocks.MockCartRepository)
			productRepo := new(mocks.MockProductRepository)
			pub := new(mocks.MockPublisher)
			tt.setupMocks(orderRepo, cartRepo, productRepo, pub)

			service := NewOrderService(orderRepo, cartRepo, productRepo, pub)
			order, err := service.PlaceOrder(context.Background(), TestUserID, testAddress())

			if tt.expectedKind != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, domain.KindOf(err))
				assert.Nil(t, order)
				orderRepo.AssertNotCalled(t, "Save", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, order)
				tt.checkOrder(t, order)
			}

			// let the async publish settle before asserting expectations
			time.Sleep(50 * time.Millisecond)

			orderRepo.AssertExpectations(t)
			cartRepo.AssertExpectations(t)
			productRepo.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("unknown status is rejected", func(t *testing.T) {
		service := NewOrderService(new(mocks.MockOrderRepository), new(mocks.MockCartRepository), new(mocks.MockProductRepository), new(mocks.MockPublisher))
		order, err := service.UpdateStatus(context.Background(), TestOrderID, "Refunded")

		assert.Error(t, err)
		assert.Equal(t, domain.KindInvalidArgument, domain.KindOf(err))
		assert.Nil(t, order)
	})

	t.Run("missing order", func(t *testing.T) {
		orderRepo := new(mocks.MockOrderRepository)
		orderRepo.On("FindByID", TestOrderID).Return(nil, nil)

		service := NewOrderService(orderRepo, new(mocks.MockCartRepository), new(mocks.MockProductRepository), new(mocks.MockPublisher))
		_, err := service.UpdateStatus(context.Background(), TestOrderID, domain.StatusPaid)

		assert.Error(t, err)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("paid stamps paidAt and re-stamps on repeat", func(t *testing.T) {
		earlier := time.Now().Add(-time.Hour)
		stored := &domain.Order{ID: TestOrderID, UserID: TestUserID, OrderNumber: "2026-08-29-ABCDEF", Status: domain.StatusPaid, PaidAt: &earlier}

		orderRepo := new(mocks.MockOrderRepository)
		orderRepo.On("FindByID", TestOrderID).Return(stored, nil)
		orderRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)
		pub := new(mocks.MockPublisher)
		pub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()

		service := NewOrderService(orderRepo, new(mocks.MockCartRepository), new(mocks.MockProductRepository), pub)
		order, err := service.UpdateStatus(context.Background(), TestOrderID, domain.StatusPaid)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, order.Status)
		assert.NotNil(t, order.PaidAt)
		assert.True(t, order.PaidAt.After(earlier), "paidAt must be re-stamped")

		time.Sleep(50 * time.Millisecond)
		orderRepo.AssertExpectations(t)
	})

	t.Run("shipped and delivered stamp their timestamps", func(t *testing.T) {
		for _, status := range []domain.OrderStatus{domain.StatusShipped, domain.StatusDelivered} {
			orderRepo := new(mocks.MockOrderRepository)
			orderRepo.On("FindByID", TestOrderID).Return(&domain.Order{ID: TestOrderID, Status: domain.StatusPaid}, nil)
			orderRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)
			pub := new(mocks.MockPublisher)
			pub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()

			service := NewOrderService(orderRepo, new(mocks.MockCartRepository), new(mocks.MockProductRepository), pub)
			order, err := service.UpdateStatus(context.Background(), TestOrderID, status)

			assert.NoError(t, err)
			assert.Equal(t, status, order.Status)
			switch status {
			case domain.StatusShipped:
				assert.NotNil(t, order.ShippedAt)
			case domain.StatusDelivered:
				assert.NotNil(t, order.DeliveredAt)
			}
		}
	})

	t.Run("cancelled sets no timestamp", func(t *testing.T) {
		orderRepo := new(mocks.MockOrderRepository)
		orderRepo.On("FindByID", TestOrderID).Return(&domain.Order{ID: TestOrderID, Status: domain.StatusPending}, nil)
		orderRepo.On("Save", mock.AnythingOfType("*domain.Order")).Return(nil)
		pub := new(mocks.MockPublisher)
		pub.On("Publish", mock.Anything, "order.status_changed", mock.Anything).Return(nil).Maybe()

		service := NewOrderService(orderRepo, new(mocks.MockCartRepository), new(mocks.MockProductRepository), pub)
		order, err := service.UpdateStatus(context.Background(), TestOrderID, domain.StatusCancelled)

		assert.NoError(t, err)
		assert.Nil(t, order.PaidAt)
		assert.Nil(t, order.ShippedAt)
		assert.Nil(t, order.DeliveredAt)
	})
}

func TestOrderService_GetOrderById(t *testing.T) {
	t.Run("owner mismatch is indistinguishable from missing", func(t *testing.T) {
		orderRepo := new(mocks.MockOrderRepository)
		orderRepo.On("FindByID", TestOrderID).Return(&domain.Order{ID: TestOrderID, UserID: 42}, nil)

		service := NewOrderService(orderRepo, new(mocks.MockCartRepository), new(mocks.MockProductRepository), new(mocks.MockPublisher))
		order, err := service.GetOrderById(context.Background(), TestUserID, TestOrderID)

		assert.Error(t, err)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
		assert.Nil(t, order)
	})

	t.Run("owner gets the order", func(t *testing.T) {
		orderRepo := new(mocks.MockOrderRepository)
		orderRepo.On("FindByID", TestOrderID).Return(&domain.Order{ID: TestOrderID, UserID: TestUserID}, nil)

		service := NewOrderService(orderRepo, new(mocks.MockCartRepository), new(mocks.MockProductRepository), new(mocks.MockPublisher))
		order, err := service.GetOrderById(context.Background(), TestUserID, TestOrderID)

		assert.NoError(t, err)
		assert.Equal(t, TestOrderID, order.ID)
	})
}

func TestGenerateOrderNumber(t *testing.T) {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-[0-9A-F]{6}$`)

	n := GenerateOrderNumber()
	assert.Regexp(t, re, n)
	assert.Equal(t, time.Now().Format("2006-01-02"), n[:10])

	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		seen[GenerateOrderNumber()] = true
	}
	assert.Greater(t, len(seen), 1, "suffixes must come from a random source")
}
