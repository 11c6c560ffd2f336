package app

import (
	"go.uber.org/zap"

	"github.com/museme/storefront/internal/domain"
)

func rentPrice(v int64) *int64 { return &v }

// checkSeedCatalog inserts sample products on an empty catalog
func (a *Application) checkSeedCatalog() {
	var count int64
	if err := a.gormDB.Model(&domain.Product{}).Count(&count).Error; err != nil {
		zap.L().Error("failed to count products", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	products := []domain.Product{
		{
			Name:        "전통 귀걸이 세트",
			Code:        "TRAD-EAR-001",
			Material:    "실버 925",
			BuyPrice:    150000,
			RentPrice:   rentPrice(30000),
			Theme:       "traditional",
			Category:    "earring",
			Thumbnail:   "/static/images/products/sample1.jpg",
			MainImage:   "/static/images/products/sample1.jpg",
			Description: "전통적인 한국 문양이 새겨진 귀걸이입니다.",
		},
		{
			Name:        "전통 목걸이",
			Code:        "TRAD-NECK-001",
			Material:    "실버 925, 진주",
			BuyPrice:    250000,
			RentPrice:   rentPrice(50000),
			Theme:       "traditional",
			Category:    "necklace",
			Thumbnail:   "/static/images/products/sample2.jpg",
			MainImage:   "/static/images/products/sample2.jpg",
			Description: "진주 장식이 돋보이는 전통 목걸이입니다.",
		},
		{
			Name:        "데일리 반지",
			Code:        "DAILY-RING-001",
			Material:    "스테인리스",
			BuyPrice:    50000,
			RentPrice:   rentPrice(10000),
			Theme:       "daily",
			Category:    "ring",
			Thumbnail:   "/static/images/products/sample3.jpg",
			MainImage:   "/static/images/products/sample3.jpg",
			Description: "매일 착용하기 좋은 심플한 반지입니다.",
		},
	}

	for i := range products {
		p := &products[i]
		if err := a.gormDB.Create(p).Error; err != nil {
			zap.L().Error("failed to seed product", zap.String("code", p.Code), zap.Error(err))
			continue
		}

		images := []domain.ProductImage{
			{ProductID: p.ID, ImageURL: p.MainImage, ImageType: domain.ImageTypeDetail},
			{ProductID: p.ID, ImageURL: p.MainImage, ImageType: domain.ImageTypeWear},
		}
		if err := a.gormDB.Create(&images).Error; err != nil {
			zap.L().Error("failed to seed product images", zap.String("code", p.Code), zap.Error(err))
		}
	}

	zap.L().Info("seeded sample catalog", zap.Int("products", len(products)))
}
