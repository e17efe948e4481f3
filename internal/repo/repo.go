package repo

import (
	"gorm.io/gorm"
)

// GormRepo owns all direct data-store access for products and users.
type GormRepo struct {
	DB *gorm.DB
}
