package domain

import "time"

// ReviewTargetKind discriminates what a review is attached to.
type ReviewTargetKind string

const (
	ReviewTargetProduct  ReviewTargetKind = "product"
	ReviewTargetActivity ReviewTargetKind = "activity"
)

// ReviewTarget is the tagged union a review submission dispatches on.
type ReviewTarget struct {
	Kind ReviewTargetKind
	ID   uint
}

type Review struct {
	ID       uint   `json:"id"`
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) IsValid() bool {
	if r.Reviewer == "" {
		return false
	}
	if r.Rating < 1 || r.Rating > 5 {
		return false
	}

	return true
}
