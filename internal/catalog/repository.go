package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/museme/storefront/internal/domain"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "all"

// ProductRepository handles read access to the product catalog
type ProductRepository interface {
	// List retrieves products, optionally restricted to an exact theme
	// and/or category match. An empty filter or the "all" category
	// returns every product in storage order.
	List(ctx context.Context, theme, category string) ([]domain.Product, error)

	// GetByID retrieves one product with its gallery projections
	// populated. A missing id yields (nil, nil).
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM-based repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context, theme, category string) ([]domain.Product, error) {
	query := r.db.WithContext(ctx).Model(&domain.Product{})
	if theme != "" {
		query = query.Where("theme = ?", theme)
	}
	if category != "" && category != CategoryAll {
		query = query.Where("category = ?", category)
	}

	var products []domain.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var images []domain.ProductImage
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", id).
		Find(&images).Error; err != nil {
		return nil, err
	}

	product.DetailImages = make([]string, 0, len(images))
	product.WearingShots = make([]string, 0, len(images))
	for _, img := range images {
		switch img.ImageType {
		case domain.ImageTypeDetail:
			product.DetailImages = append(product.DetailImages, img.ImageURL)
		case domain.ImageTypeWear:
			product.WearingShots = append(product.WearingShots, img.ImageURL)
		}
	}
	return &product, nil
}
