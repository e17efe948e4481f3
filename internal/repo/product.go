package repo

import (
	"context"
	"strings"

	"github.com/tiendaropa/backoffice/internal/models"
)

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	items := []models.Product{}
	if err := r.DB.WithContext(ctx).Order("fecha_creacion DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) UpdateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Save(prod).Error
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Product{}, id).Error
}

// SearchProducts matches the term case-insensitively as a substring of
// the product name or category. LOWER/LIKE keeps the query portable
// between postgres and the sqlite test database.
func (r *GormRepo) SearchProducts(ctx context.Context, term string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	items := []models.Product{}
	err := r.DB.WithContext(ctx).
		Where("LOWER(nombre) LIKE ? OR LOWER(categoria) LIKE ?", pattern, pattern).
		Order("fecha_creacion DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
