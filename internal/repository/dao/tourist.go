package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type WishlistItem struct {
	ID uint `gorm:"primaryKey"`

	TouristID uint `gorm:"not null;index;uniqueIndex:idx_wishlist_tourist_product"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_wishlist_tourist_product"`

	CreatedAt time.Time `gorm:"not null"`
}

type CartItem struct {
	ID uint `gorm:"primaryKey"`

	TouristID uint `gorm:"not null;index;uniqueIndex:idx_cart_tourist_product"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_cart_tourist_product"`
	Quantity  int  `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PurchaseRecord struct {
	ID uint `gorm:"primaryKey"`

	TouristID uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null;index"`
	Quantity  int     `gorm:"not null"`
	TotalPaid float64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type TouristDAO struct {
	db *gorm.DB
}

func NewTouristDAO(db *gorm.DB) *TouristDAO {
	return &TouristDAO{
		db: db,
	}
}

// ToggleWishlist adds the product to the tourist's wishlist, or removes it if
// already present. Returns whether the product is wishlisted afterwards.
func (d *TouristDAO) ToggleWishlist(ctx context.Context, touristID, productID uint) (bool, error) {
	var existing WishlistItem

	err := d.db.WithContext(ctx).
		Where("tourist_id = ? AND product_id = ?", touristID, productID).
		First(&existing).Error
	if err == nil {
		if err = d.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return false, err
		}

		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	item := WishlistItem{TouristID: touristID, ProductID: productID}
	if err = d.db.WithContext(ctx).Create(&item).Error; err != nil {
		return false, err
	}

	return true, nil
}

func (d *TouristDAO) FindWishlist(ctx context.Context, touristID uint) ([]WishlistItem, error) {
	var items []WishlistItem

	result := d.db.WithContext(ctx).
		Where("tourist_id = ?", touristID).
		Order("id").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// UpsertCartItem adds the product to the cart, accumulating quantity if the
// line already exists.
func (d *TouristDAO) UpsertCartItem(ctx context.Context, touristID, productID uint, quantity int) (CartItem, error) {
	var item CartItem

	err := d.db.WithContext(ctx).
		Where("tourist_id = ? AND product_id = ?", touristID, productID).
		First(&item).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return CartItem{}, err
		}

		item = CartItem{TouristID: touristID, ProductID: productID, Quantity: quantity}
		if err = d.db.WithContext(ctx).Create(&item).Error; err != nil {
			return CartItem{}, err
		}

		return item, nil
	}

	item.Quantity += quantity
	if err = d.db.WithContext(ctx).Save(&item).Error; err != nil {
		return CartItem{}, err
	}

	return item, nil
}

func (d *TouristDAO) FindCart(ctx context.Context, touristID uint) ([]CartItem, error) {
	var items []CartItem

	result := d.db.WithContext(ctx).
		Where("tourist_id = ?", touristID).
		Order("id").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// RecordPurchase decrements stock, bumps the product's sales counter, clears
// the matching cart line and writes the history row, all in one transaction.
func (d *TouristDAO) RecordPurchase(ctx context.Context, record PurchaseRecord) (PurchaseRecord, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product Product
		if err := tx.First(&product, record.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}

			return err
		}

		if product.Quantity < record.Quantity {
			return ErrInsufficientStock
		}

		err := tx.Model(&Product{}).
			Where("id = ?", record.ProductID).
			Updates(map[string]interface{}{
				"quantity": gorm.Expr("quantity - ?", record.Quantity),
				"sales":    gorm.Expr("sales + ?", record.Quantity),
			}).Error
		if err != nil {
			return err
		}

		err = tx.Where("tourist_id = ? AND product_id = ?", record.TouristID, record.ProductID).
			Delete(&CartItem{}).Error
		if err != nil {
			return err
		}

		return tx.Create(&record).Error
	})
	if err != nil {
		return PurchaseRecord{}, err
	}

	return record, nil
}

func (d *TouristDAO) HasPurchased(ctx context.Context, touristID, productID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&PurchaseRecord{}).
		Where("tourist_id = ? AND product_id = ?", touristID, productID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *TouristDAO) FindPurchases(ctx context.Context, touristID uint) ([]PurchaseRecord, error) {
	var records []PurchaseRecord

	result := d.db.WithContext(ctx).
		Where("tourist_id = ?", touristID).
		Order("created_at desc").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}
