package domain

import (
	"errors"
	"time"
)

var ErrPurchaseNotFound = errors.New("purchase not found")

// Purchase records that a learner bought a course. Immutable once
// created; payment settlement happens outside this service.
type Purchase struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	CourseID  string    `json:"course_id" bson:"course_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
