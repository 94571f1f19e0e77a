package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/domain"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/repository"
	"github.com/codedprincesharma/Marketplace-Microservices/pkg/storage"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotProductOwner = errors.New("not the product owner")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ImageUploader is the image storage collaborator. Satisfied by
// pkg/storage.S3Storage.
type ImageUploader interface {
	Upload(ctx context.Context, fileName string, body io.Reader) (*storage.UploadResult, error)
}

type ProductService struct {
	productRepo repository.ProductRepository
	uploader    ImageUploader
}

type CreateProductRequest struct {
	Title         string  `json:"title" form:"title" validate:"required"`
	Description   string  `json:"description" form:"description" validate:"omitempty,max=500"`
	PriceAmount   float64 `json:"priceAmount" form:"priceAmount" validate:"required,gt=0"`
	PriceCurrency string  `json:"priceCurrency" form:"priceCurrency" validate:"omitempty,oneof=USD INR"`
}

type UpdateProductRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=1"`
	Description   *string  `json:"description" validate:"omitempty,max=500"`
	PriceAmount   *float64 `json:"priceAmount" validate:"omitempty,gt=0"`
	PriceCurrency *string  `json:"priceCurrency" validate:"omitempty,oneof=USD INR"`
}

type ListProductsRequest struct {
	Query    string
	MinPrice *float64
	MaxPrice *float64
	Skip     int
	Limit    int
}

func NewProductService(productRepo repository.ProductRepository, uploader ImageUploader) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		uploader:    uploader,
	}
}

// Create stores a new product owned by the verified seller. The seller id
// always comes from the token claims, never from client input.
func (s *ProductService) Create(ctx context.Context, sellerID uuid.UUID, req CreateProductRequest, images []*multipart.FileHeader) (*domain.Product, error) {
	currency := domain.DefaultCurrency
	if req.PriceCurrency != "" {
		currency = domain.Currency(req.PriceCurrency)
	}

	now := time.Now()
	product := &domain.Product{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Price: domain.Price{
			Amount:   req.PriceAmount,
			Currency: currency,
		},
		SellerID:  sellerID,
		Images:    []domain.ProductImage{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, fh := range images {
		img, err := s.uploadImage(ctx, fh)
		if err != nil {
			return nil, err
		}
		product.Images = append(product.Images, *img)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) uploadImage(ctx context.Context, fh *multipart.FileHeader) (*domain.ProductImage, error) {
	if s.uploader == nil {
		return nil, errors.New("image storage is not configured")
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer file.Close()

	res, err := s.uploader.Upload(ctx, fh.Filename, file)
	if err != nil {
		return nil, err
	}

	return &domain.ProductImage{
		URL:          res.URL,
		ThumbnailURL: res.ThumbnailURL,
		FileID:       res.FileID,
	}, nil
}

func (s *ProductService) List(ctx context.Context, req ListProductsRequest) ([]*domain.Product, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	skip := req.Skip
	if skip < 0 {
		skip = 0
	}

	return s.productRepo.List(ctx, repository.ProductFilter{
		Query:    req.Query,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Skip:     skip,
		Limit:    limit,
	})
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

// Update applies the allow-listed fields. A caller who is not the owner gets
// the same not-found failure as a missing product, so updates cannot be used
// to probe for other sellers' ids. Admins bypass the ownership check.
func (s *ProductService) Update(ctx context.Context, caller *domain.Claims, id uuid.UUID, req UpdateProductRequest) (*domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if caller.Role != domain.RoleAdmin && product.SellerID != caller.UserID {
		return nil, ErrProductNotFound
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.PriceAmount != nil {
		product.Price.Amount = *req.PriceAmount
	}
	if req.PriceCurrency != nil {
		product.Price.Currency = domain.Currency(*req.PriceCurrency)
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

// Delete removes a product. Unlike Update, a non-owning caller is told so
// explicitly.
func (s *ProductService) Delete(ctx context.Context, caller *domain.Claims, id uuid.UUID) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if caller.Role != domain.RoleAdmin && product.SellerID != caller.UserID {
		return ErrNotProductOwner
	}

	err = s.productRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	return nil
}
