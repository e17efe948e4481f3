package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tiendaropa/backoffice/internal/models"
	"github.com/tiendaropa/backoffice/internal/repo"
	"github.com/tiendaropa/backoffice/internal/transport"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProductService) Create(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	prod, err := validateProduct(req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	updated, err := validateProduct(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = updated.Name
	existing.Description = updated.Description
	existing.Price = updated.Price
	existing.Size = updated.Size
	existing.Color = updated.Color
	existing.Category = updated.Category
	existing.Image = updated.Image

	if err := s.Repo.UpdateProduct(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.DeleteProduct(ctx, id)
}

func (s *ProductService) Search(ctx context.Context, term string) ([]models.Product, error) {
	if strings.TrimSpace(term) == "" {
		v := &ValidationError{}
		v.Add("q", "search term must not be empty")
		return nil, v
	}
	return s.Repo.SearchProducts(ctx, term)
}

// validateProduct checks the whole body up front and reports every
// failing field at once.
func validateProduct(req transport.ProductRequest) (*models.Product, error) {
	v := &ValidationError{}

	name := trimmed(req.Name)
	if req.Name == nil || name == "" {
		v.Add("name", "name is required")
	}

	var price float64
	switch {
	case req.Price == nil:
		v.Add("price", "price is required")
	case *req.Price <= 0:
		v.Add("price", "price must be greater than 0")
	default:
		price = *req.Price
	}

	if err := v.OrNil(); err != nil {
		return nil, err
	}

	return &models.Product{
		Name:        name,
		Description: trimmed(req.Description),
		Price:       price,
		Size:        trimmed(req.Size),
		Color:       trimmed(req.Color),
		Category:    trimmed(req.Category),
		Image:       trimmed(req.Image),
	}, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
