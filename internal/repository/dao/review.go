package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrUnknownReviewTarget = errors.New("unknown review target")

// Review rows are keyed by (target_kind, target_id) so products and
// activities share one table.
type Review struct {
	ID uint `gorm:"primaryKey"`

	TargetKind string `gorm:"not null;index:idx_reviews_target"`
	TargetID   uint   `gorm:"not null;index:idx_reviews_target"`

	Reviewer string `gorm:"not null"`
	Rating   int    `gorm:"not null"`
	Comment  string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
}

type ReviewDAO struct {
	db *gorm.DB
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{
		db: db,
	}
}

func targetTable(kind string) (string, error) {
	switch kind {
	case "product":
		return "products", nil
	case "activity":
		return "activities", nil
	}

	return "", ErrUnknownReviewTarget
}

// Insert appends a review and recomputes the target's aggregate columns from
// the stored rows, all inside one transaction. Recomputing from the rows
// instead of incrementing keeps two concurrent submissions from losing an
// update.
func (d *ReviewDAO) Insert(ctx context.Context, review Review) (Review, error) {
	table, err := targetTable(review.TargetKind)
	if err != nil {
		return Review{}, err
	}

	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		stmt := fmt.Sprintf(`UPDATE %s SET
			average_rating = (SELECT AVG(rating) FROM reviews WHERE target_kind = ? AND target_id = ?),
			total_ratings  = (SELECT COUNT(*) FROM reviews WHERE target_kind = ? AND target_id = ?)
			WHERE id = ?`, table)

		return tx.Exec(stmt,
			review.TargetKind, review.TargetID,
			review.TargetKind, review.TargetID,
			review.TargetID,
		).Error
	})
	if err != nil {
		return Review{}, err
	}

	return review, nil
}

func (d *ReviewDAO) FindByTarget(ctx context.Context, kind string, targetID uint) ([]Review, error) {
	var reviews []Review

	result := d.db.WithContext(ctx).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Order("created_at desc").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}
