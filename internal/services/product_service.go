package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/repository"

	"github.com/go-redis/redis/v8"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const productCacheTTL = time.Minute

// productCacheKey is the only key scheme the product cache uses; readers
// look products up by slug, so entries are keyed by slug as well.
func productCacheKey(productSlug string) string {
	return "product:slug:" + productSlug
}

type ProductService struct {
	products    repository.ProductRepository
	categories  repository.CategoryRepository
	redisClient *redis.Client
}

func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

func (s *ProductService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	SKU         string
	Stock       int
	CategoryID  uint
	Images      []string
	Featured    bool
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	SKU         *string
	Stock       *int
	CategoryID  *uint
	Featured    *bool
}

func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if input.Price.IsNegative() {
		return nil, domain.E(domain.KindInvalidArgument, "price must not be negative")
	}
	if input.Stock < 0 {
		return nil, domain.E(domain.KindInvalidArgument, "stock must not be negative")
	}

	sku := strings.ToUpper(strings.TrimSpace(input.SKU))
	existing, err := s.products.FindBySKU(sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.E(domain.KindDuplicateField, "a product with this SKU already exists")
	}

	category, err := s.categories.FindByID(input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.E(domain.KindNotFound, "category not found")
	}

	images := make([]domain.ProductImage, 0, len(input.Images))
	for i, url := range input.Images {
		images = append(images, domain.ProductImage{URL: url, Position: i})
	}

	product := &domain.Product{
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		SKU:         sku,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		Images:      images,
		Featured:    input.Featured,
	}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll()
}

// GetProductBySlug serves public product reads through a short-lived redis
// cache.
func (s *ProductService) GetProductBySlug(ctx context.Context, productSlug string) (*domain.Product, error) {
	cacheKey := productCacheKey(productSlug)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	product, err := s.products.FindBySlug(productSlug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.E(domain.KindNotFound, "product not found")
	}

	s.cacheProduct(ctx, product, productCacheTTL)
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID uint, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.E(domain.KindNotFound, "product not found")
	}
	oldSlug := product.Slug

	if input.SKU != nil {
		sku := strings.ToUpper(strings.TrimSpace(*input.SKU))
		if sku != product.SKU {
			existing, err := s.products.FindBySKU(sku)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.E(domain.KindDuplicateField, "a product with this SKU already exists")
			}
			product.SKU = sku
		}
	}

	if input.CategoryID != nil && *input.CategoryID != product.CategoryID {
		category, err := s.categories.FindByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.E(domain.KindNotFound, "category not found")
		}
		product.CategoryID = *input.CategoryID
	}

	if input.Name != nil && *input.Name != product.Name {
		product.Name = *input.Name
		product.Slug = slug.Make(*input.Name)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domain.E(domain.KindInvalidArgument, "price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domain.E(domain.KindInvalidArgument, "stock must not be negative")
		}
		product.Stock = *input.Stock
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}

	if err := s.products.Save(product); err != nil {
		return nil, err
	}

	s.dropCachedSlugs(ctx, oldSlug, product.Slug)
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	product, err := s.products.FindByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.E(domain.KindNotFound, "product not found")
	}

	if err := s.products.Delete(productID); err != nil {
		return err
	}
	s.dropCachedSlugs(ctx, product.Slug)
	return nil
}

// WarmupProductCache primes the read cache with the whole catalog,
// fetching concurrently.
func (s *ProductService) WarmupProductCache(ctx context.Context) error {
	if s.redisClient == nil {
		return nil
	}

	products, err := s.products.FindAll()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i := range products {
		product := &products[i]
		g.Go(func() error {
			s.cacheProduct(ctx, product, 5*time.Minute)
			return nil
		})
	}
	return g.Wait()
}

func (s *ProductService) cacheProduct(ctx context.Context, product *domain.Product, ttl time.Duration) {
	if s.redisClient == nil {
		return
	}
	if data, err := json.Marshal(product); err == nil {
		s.redisClient.Set(ctx, productCacheKey(product.Slug), data, ttl)
	}
}

func (s *ProductService) dropCachedSlugs(ctx context.Context, slugs ...string) {
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
