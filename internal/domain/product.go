package domain

import "time"

// Image type tags stored in product_images.image_type.
const (
	ImageTypeDetail = "detail"
	ImageTypeWear   = "wear"
)

// Product is a catalog item. Prices are stored in whole currency units
// (KRW); RentPrice is nil for purchase-only items.
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Code        string    `gorm:"uniqueIndex;size:64;not null" json:"code"`
	Material    string    `gorm:"size:200" json:"material"`
	BuyPrice    int64     `gorm:"not null" json:"buy_price"`
	RentPrice   *int64    `json:"rent_price"`
	Theme       string    `gorm:"size:32;index" json:"theme"`
	Category    string    `gorm:"size:32;index" json:"category"`
	Thumbnail   string    `gorm:"size:1024" json:"thumbnail"`
	MainImage   string    `gorm:"size:1024" json:"main_image"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// View projections over product_images, populated at read time.
	DetailImages []string `gorm:"-" json:"detail_images"`
	WearingShots []string `gorm:"-" json:"wearing_shots"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}

// ProductImage is an extra gallery row owned by a single product.
type ProductImage struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64  `gorm:"index;not null" json:"product_id"`
	ImageURL  string `gorm:"size:1024;not null" json:"image_url"`
	ImageType string `gorm:"size:16;not null" json:"image_type"`
}

// TableName Specify table name
func (ProductImage) TableName() string {
	return "product_images"
}
