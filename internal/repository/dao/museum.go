package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrMuseumNotFound = errors.New("museum not found")

type Museum struct {
	ID uint `gorm:"primaryKey"`

	Name        string   `gorm:"not null"`
	Description string   `gorm:"type:text"`
	Pictures    []string `gorm:"serializer:json"`
	Location    string   `gorm:"not null"`

	OpeningHours string

	TicketPriceForeigner float64 `gorm:"not null;default:0"`
	TicketPriceNative    float64 `gorm:"not null;default:0"`
	TicketPriceStudent   float64 `gorm:"not null;default:0"`

	Tags   []string `gorm:"serializer:json"`
	Rating float64  `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type MuseumDAO struct {
	db *gorm.DB
}

func NewMuseumDAO(db *gorm.DB) *MuseumDAO {
	return &MuseumDAO{
		db: db,
	}
}

func (d *MuseumDAO) Insert(ctx context.Context, museum Museum) (Museum, error) {
	result := d.db.WithContext(ctx).Create(&museum)
	if result.Error != nil {
		return Museum{}, result.Error
	}

	return museum, nil
}

func (d *MuseumDAO) FindAll(ctx context.Context) ([]Museum, error) {
	var museums []Museum

	result := d.db.WithContext(ctx).Order("id").Find(&museums)
	if result.Error != nil {
		return nil, result.Error
	}

	return museums, nil
}

func (d *MuseumDAO) FindByID(ctx context.Context, id uint) (Museum, error) {
	var museum Museum

	result := d.db.WithContext(ctx).First(&museum, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Museum{}, ErrMuseumNotFound
		}

		return Museum{}, result.Error
	}

	return museum, nil
}

// Update replaces the whole museum document, mirroring the full-document PUT
// of the API.
func (d *MuseumDAO) Update(ctx context.Context, museum Museum) (Museum, error) {
	existing, err := d.FindByID(ctx, museum.ID)
	if err != nil {
		return Museum{}, err
	}

	// Save writes every column, so carry the original creation time over.
	museum.CreatedAt = existing.CreatedAt

	result := d.db.WithContext(ctx).Save(&museum)
	if result.Error != nil {
		return Museum{}, result.Error
	}

	return museum, nil
}

func (d *MuseumDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Museum{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMuseumNotFound
	}

	return nil
}
