package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTagNotFound = errors.New("tag not found")

type MuseumTag struct {
	ID uint `gorm:"primaryKey"`

	Type             string `gorm:"not null"` // "Monuments", "Museums", "Religious Sites", or "Palaces/Castles"
	HistoricalPeriod string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PreferenceTag struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Description string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TagDAO struct {
	db *gorm.DB
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{
		db: db,
	}
}

func (d *TagDAO) InsertMuseumTag(ctx context.Context, tag MuseumTag) (MuseumTag, error) {
	result := d.db.WithContext(ctx).Create(&tag)
	if result.Error != nil {
		return MuseumTag{}, result.Error
	}

	return tag, nil
}

func (d *TagDAO) FindAllMuseumTags(ctx context.Context) ([]MuseumTag, error) {
	var tags []MuseumTag

	result := d.db.WithContext(ctx).Order("id").Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (d *TagDAO) DeleteMuseumTag(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&MuseumTag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}

	return nil
}

func (d *TagDAO) InsertPreferenceTag(ctx context.Context, tag PreferenceTag) (PreferenceTag, error) {
	result := d.db.WithContext(ctx).Create(&tag)
	if result.Error != nil {
		return PreferenceTag{}, result.Error
	}

	return tag, nil
}

func (d *TagDAO) FindAllPreferenceTags(ctx context.Context) ([]PreferenceTag, error) {
	var tags []PreferenceTag

	result := d.db.WithContext(ctx).Order("id").Find(&tags)
	if result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (d *TagDAO) UpdatePreferenceTag(ctx context.Context, tag PreferenceTag) (PreferenceTag, error) {
	var existing PreferenceTag
	if err := d.db.WithContext(ctx).First(&existing, tag.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PreferenceTag{}, ErrTagNotFound
		}

		return PreferenceTag{}, err
	}

	// Save writes every column, so carry the original creation time over.
	tag.CreatedAt = existing.CreatedAt

	result := d.db.WithContext(ctx).Save(&tag)
	if result.Error != nil {
		return PreferenceTag{}, result.Error
	}

	return tag, nil
}

func (d *TagDAO) DeletePreferenceTag(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&PreferenceTag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}

	return nil
}
