package repository

import (
	"context"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository/dao"
)

var ErrActivityNotFound = dao.ErrActivityNotFound

type ActivityDAO interface {
	Insert(ctx context.Context, activity dao.Activity) (dao.Activity, error)
	FindAll(ctx context.Context) ([]dao.Activity, error)
	FindByID(ctx context.Context, id uint) (dao.Activity, error)
}

type ActivityRepository struct {
	dao       ActivityDAO
	reviewDAO ReviewDAO
}

func NewActivityRepository(dao ActivityDAO, reviewDAO ReviewDAO) *ActivityRepository {
	return &ActivityRepository{
		dao:       dao,
		reviewDAO: reviewDAO,
	}
}

func (r *ActivityRepository) daoToDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:            a.ID,
		Name:          a.Name,
		Location:      a.Location,
		Price:         a.Price,
		AverageRating: a.AverageRating,
		TotalRatings:  a.TotalRatings,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	created, err := r.dao.Insert(ctx, dao.Activity{
		Name:     activity.Name,
		Location: activity.Location,
		Price:    activity.Price,
	})
	if err != nil {
		return domain.Activity{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *ActivityRepository) FindAll(ctx context.Context) ([]domain.Activity, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, len(found))
	for i, a := range found {
		activities[i] = r.daoToDomain(a)
	}

	return activities, nil
}

// FindByID returns the activity with its reviews attached.
func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (domain.Activity, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, err
	}

	activity := r.daoToDomain(found)

	reviews, err := r.reviewDAO.FindByTarget(ctx, string(domain.ReviewTargetActivity), id)
	if err != nil {
		return domain.Activity{}, err
	}
	activity.Reviews = reviewDaosToDomain(reviews)

	return activity, nil
}
