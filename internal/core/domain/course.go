package domain

import (
	"errors"
	"time"
)

var ErrCourseNotFound = errors.New("course not found")
var ErrForbidden = errors.New("access forbidden")

// Course is a marketplace listing created and owned by an instructor.
type Course struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	OwnerID     string    `json:"owner_id" bson:"owner_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// OwnedBy reports whether principalID is the recorded owner of the
// course. Every mutating course operation must pass this check after
// the course has been resolved by id, never before.
func (c *Course) OwnedBy(principalID string) bool {
	return principalID != "" && c.OwnerID == principalID
}
