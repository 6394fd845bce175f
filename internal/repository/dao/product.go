package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID uint `gorm:"primaryKey"`

	Name        string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	Quantity    int     `gorm:"not null;default:0"`
	Image       string  `gorm:"type:text"`
	Description string  `gorm:"type:text"`

	Seller  string
	OwnerID uint `gorm:"index"`

	Archived bool `gorm:"not null;default:false"`
	Sales    int  `gorm:"not null;default:0"`

	AverageRating float64 `gorm:"not null;default:0"`
	TotalRatings  int     `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

func (d *ProductDAO) Insert(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

// FindAll returns every product, archived included. Used by the seller/admin
// listing.
func (d *ProductDAO) FindAll(ctx context.Context) ([]Product, error) {
	var products []Product

	result := d.db.WithContext(ctx).Order("id").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

// FindVisible returns only non-archived products. Used by the tourist-facing
// listing.
func (d *ProductDAO) FindVisible(ctx context.Context) ([]Product, error) {
	var products []Product

	result := d.db.WithContext(ctx).Where("archived = ?", false).Order("id").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *ProductDAO) FindByID(ctx context.Context, id uint) (Product, error) {
	var product Product

	result := d.db.WithContext(ctx).First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

// Update replaces the whole product document, mirroring the full-document PUT
// of the API.
func (d *ProductDAO) Update(ctx context.Context, product Product) (Product, error) {
	if _, err := d.FindByID(ctx, product.ID); err != nil {
		return Product{}, err
	}

	result := d.db.WithContext(ctx).Save(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

// ToggleArchive flips the archived flag in a single statement and returns the
// product as stored afterwards. No other field is touched.
func (d *ProductDAO) ToggleArchive(ctx context.Context, id uint) (Product, error) {
	result := d.db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ?", id).
		Update("archived", gorm.Expr("NOT archived"))
	if result.Error != nil {
		return Product{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Product{}, ErrProductNotFound
	}

	return d.FindByID(ctx, id)
}
