package repository

import (
	"context"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository/dao"
)

var ErrUnknownReviewTarget = dao.ErrUnknownReviewTarget

type ReviewDAO interface {
	Insert(ctx context.Context, review dao.Review) (dao.Review, error)
	FindByTarget(ctx context.Context, kind string, targetID uint) ([]dao.Review, error)
}

type ReviewRepository struct {
	dao ReviewDAO
}

func NewReviewRepository(dao ReviewDAO) *ReviewRepository {
	return &ReviewRepository{
		dao: dao,
	}
}

func reviewDaoToDomain(r dao.Review) domain.Review {
	return domain.Review{
		ID:        r.ID,
		Reviewer:  r.Reviewer,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func reviewDaosToDomain(reviews []dao.Review) []domain.Review {
	out := make([]domain.Review, len(reviews))
	for i, r := range reviews {
		out[i] = reviewDaoToDomain(r)
	}

	return out
}

// Create appends a review to the target and recomputes the target's
// aggregates (done atomically by the DAO).
func (r *ReviewRepository) Create(ctx context.Context, target domain.ReviewTarget, review domain.Review) (domain.Review, error) {
	created, err := r.dao.Insert(ctx, dao.Review{
		TargetKind: string(target.Kind),
		TargetID:   target.ID,
		Reviewer:   review.Reviewer,
		Rating:     review.Rating,
		Comment:    review.Comment,
	})
	if err != nil {
		return domain.Review{}, err
	}

	return reviewDaoToDomain(created), nil
}

func (r *ReviewRepository) FindByTarget(ctx context.Context, target domain.ReviewTarget) ([]domain.Review, error) {
	found, err := r.dao.FindByTarget(ctx, string(target.Kind), target.ID)
	if err != nil {
		return nil, err
	}

	return reviewDaosToDomain(found), nil
}
