package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/repository"
)

type stubReviewRepo struct {
	created []domain.Review
	target  domain.ReviewTarget
}

func (r *stubReviewRepo) Create(_ context.Context, target domain.ReviewTarget, review domain.Review) (domain.Review, error) {
	review.ID = uint(len(r.created) + 1)
	r.created = append(r.created, review)
	r.target = target

	return review, nil
}

type stubProductRepo struct {
	products map[uint]domain.Product
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, repository.ErrProductNotFound
	}

	return p, nil
}

type stubActivityRepo struct {
	activities map[uint]domain.Activity
}

func (r *stubActivityRepo) FindByID(_ context.Context, id uint) (domain.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return domain.Activity{}, repository.ErrActivityNotFound
	}

	return a, nil
}

type stubPurchaseChecker struct {
	purchased map[uint]bool
}

func (c *stubPurchaseChecker) HasPurchased(_ context.Context, _, productID uint) (bool, error) {
	return c.purchased[productID], nil
}

func newReviewFixture() (*ReviewService, *stubReviewRepo, *stubPurchaseChecker) {
	repo := &stubReviewRepo{}
	products := &stubProductRepo{products: map[uint]domain.Product{
		1: {ID: 1, Name: "Scarab Amulet"},
	}}
	activities := &stubActivityRepo{activities: map[uint]domain.Activity{
		10: {ID: 10, Name: "Pyramid Tour"},
	}}
	purchases := &stubPurchaseChecker{purchased: map[uint]bool{}}

	return NewReviewService(repo, products, activities, purchases), repo, purchases
}

func TestReviewService_SubmitReview_ProductGate(t *testing.T) {
	svc, repo, purchases := newReviewFixture()
	ctx := context.Background()

	target := domain.ReviewTarget{Kind: domain.ReviewTargetProduct, ID: 1}
	review := domain.Review{Reviewer: "Alice", Rating: 5, Comment: "great"}

	_, err := svc.SubmitReview(ctx, target, 42, review)
	assert.ErrorIs(t, err, ErrNotPurchased)
	assert.Empty(t, repo.created)

	purchases.purchased[1] = true

	created, err := svc.SubmitReview(ctx, target, 42, review)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, target, repo.target)
}

func TestReviewService_SubmitReview_DuplicatesAllowed(t *testing.T) {
	svc, repo, purchases := newReviewFixture()
	ctx := context.Background()
	purchases.purchased[1] = true

	target := domain.ReviewTarget{Kind: domain.ReviewTargetProduct, ID: 1}

	for i := 0; i < 2; i++ {
		_, err := svc.SubmitReview(ctx, target, 42, domain.Review{Reviewer: "Alice", Rating: 4})
		require.NoError(t, err)
	}

	assert.Len(t, repo.created, 2)
}

func TestReviewService_SubmitReview_ActivityNotGated(t *testing.T) {
	svc, repo, _ := newReviewFixture()
	ctx := context.Background()

	target := domain.ReviewTarget{Kind: domain.ReviewTargetActivity, ID: 10}

	created, err := svc.SubmitReview(ctx, target, 42, domain.Review{Reviewer: "Bob", Rating: 3})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, repo.created, 1)
}

func TestReviewService_SubmitReview_Errors(t *testing.T) {
	svc, _, purchases := newReviewFixture()
	ctx := context.Background()
	purchases.purchased[1] = true

	tests := []struct {
		name    string
		target  domain.ReviewTarget
		review  domain.Review
		wantErr error
	}{
		{
			name:    "rating below range",
			target:  domain.ReviewTarget{Kind: domain.ReviewTargetProduct, ID: 1},
			review:  domain.Review{Reviewer: "Alice", Rating: 0},
			wantErr: ErrInvalidReview,
		},
		{
			name:    "rating above range",
			target:  domain.ReviewTarget{Kind: domain.ReviewTargetProduct, ID: 1},
			review:  domain.Review{Reviewer: "Alice", Rating: 6},
			wantErr: ErrInvalidReview,
		},
		{
			name:    "missing reviewer",
			target:  domain.ReviewTarget{Kind: domain.ReviewTargetProduct, ID: 1},
			review:  domain.Review{Rating: 4},
			wantErr: ErrInvalidReview,
		},
		{
			name:    "unknown product",
			target:  domain.ReviewTarget{Kind: domain.ReviewTargetProduct, ID: 999},
			review:  domain.Review{Reviewer: "Alice", Rating: 4},
			wantErr: ErrProductNotFound,
		},
		{
			name:    "unknown activity",
			target:  domain.ReviewTarget{Kind: domain.ReviewTargetActivity, ID: 999},
			review:  domain.Review{Reviewer: "Alice", Rating: 4},
			wantErr: ErrActivityNotFound,
		},
		{
			name:    "unknown target kind",
			target:  domain.ReviewTarget{Kind: "hotel", ID: 1},
			review:  domain.Review{Reviewer: "Alice", Rating: 4},
			wantErr: ErrUnknownReviewTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitReview(ctx, tt.target, 42, tt.review)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
