package handler

import "time"

// --- Request types ---

type createCourseRequest struct {
	Title       string  `json:"title"       validate:"required,min=2"`
	Description string  `json:"description" validate:"required,min=2"`
	ImageURL    string  `json:"imageUrl"    validate:"required,url"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

type updateCourseRequest struct {
	CourseID    string  `json:"courseId"    validate:"required"`
	Title       string  `json:"title"       validate:"required,min=2"`
	Description string  `json:"description" validate:"required,min=2"`
	ImageURL    string  `json:"imageUrl"    validate:"required,url"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
}

type deleteCourseRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

type purchaseRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal domain changes. Field names on the wire follow the
// documented camelCase interface.

type courseIDResponse struct {
	CourseID string `json:"courseId"`
}

type courseResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type courseListResponse struct {
	Courses []courseResponse `json:"courses"`
}

type purchaseResponse struct {
	PurchaseID   string `json:"purchaseId"`
	AlreadyOwned bool   `json:"alreadyOwned,omitempty"`
}

type purchaseItemResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CourseID  string    `json:"courseId"`
	CreatedAt time.Time `json:"createdAt"`
}

type purchaseListResponse struct {
	Purchases   []purchaseItemResponse `json:"purchases"`
	CoursesData []courseResponse       `json:"coursesData"`
}
