package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository"
)

var (
	ErrInvalidReview       = errors.New("invalid review")
	ErrNotPurchased        = errors.New("product has not been purchased by this user")
	ErrUnknownReviewTarget = repository.ErrUnknownReviewTarget
)

type ReviewRepository interface {
	Create(ctx context.Context, target domain.ReviewTarget, review domain.Review) (domain.Review, error)
}

type ReviewProductRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Product, error)
}

type ReviewActivityRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Activity, error)
}

type PurchaseChecker interface {
	HasPurchased(ctx context.Context, touristID, productID uint) (bool, error)
}

type ReviewService struct {
	repo         ReviewRepository
	productRepo  ReviewProductRepository
	activityRepo ReviewActivityRepository
	purchases    PurchaseChecker
}

func NewReviewService(repo ReviewRepository, productRepo ReviewProductRepository, activityRepo ReviewActivityRepository, purchases PurchaseChecker) *ReviewService {
	return &ReviewService{
		repo:         repo,
		productRepo:  productRepo,
		activityRepo: activityRepo,
		purchases:    purchases,
	}
}

// SubmitReview appends a review to the target and recomputes its aggregates.
// Product reviews are purchase-gated: the submitting user must have a
// recorded purchase of the product. Activities are not gated. Duplicate
// reviews from the same reviewer are allowed.
func (s *ReviewService) SubmitReview(ctx context.Context, target domain.ReviewTarget, userID uint, review domain.Review) (domain.Review, error) {
	if !review.IsValid() {
		return domain.Review{}, ErrInvalidReview
	}

	switch target.Kind {
	case domain.ReviewTargetProduct:
		if _, err := s.productRepo.FindByID(ctx, target.ID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domain.Review{}, ErrProductNotFound
			}

			return domain.Review{}, fmt.Errorf("s.productRepo.FindByID -> %w", err)
		}

		purchased, err := s.purchases.HasPurchased(ctx, userID, target.ID)
		if err != nil {
			return domain.Review{}, fmt.Errorf("s.purchases.HasPurchased -> %w", err)
		}
		if !purchased {
			return domain.Review{}, ErrNotPurchased
		}
	case domain.ReviewTargetActivity:
		if _, err := s.activityRepo.FindByID(ctx, target.ID); err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return domain.Review{}, ErrActivityNotFound
			}

			return domain.Review{}, fmt.Errorf("s.activityRepo.FindByID -> %w", err)
		}
	default:
		return domain.Review{}, ErrUnknownReviewTarget
	}

	created, err := s.repo.Create(ctx, target, review)
	if err != nil {
		return domain.Review{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
