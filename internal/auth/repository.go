package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/museme/storefront/internal/domain"
)

// UserRepository handles database operations for user accounts
type UserRepository interface {
	// GetByEmail retrieves a user by email. A missing email yields (nil, nil).
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID retrieves a user by id. A missing id yields (nil, nil).
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create inserts a new user and fills in the generated id.
	Create(ctx context.Context, user *domain.User) error
}

// GormUserRepository is the GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM-based repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}
