package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrActivityNotFound = errors.New("activity not found")

type Activity struct {
	ID uint `gorm:"primaryKey"`

	Name     string  `gorm:"not null"`
	Location string
	Price    float64 `gorm:"not null;default:0"`

	AverageRating float64 `gorm:"not null;default:0"`
	TotalRatings  int     `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) Insert(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).Create(&activity)
	if result.Error != nil {
		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) FindAll(ctx context.Context) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Order("id").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *ActivityDAO) FindByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}
