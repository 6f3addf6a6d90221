package handler

import "github.com/courseforge/course-market/internal/core/domain"

func toCourseResponse(c *domain.Course) courseResponse {
	return courseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		ImageURL:    c.ImageURL,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt.UTC(),
	}
}

func toCourseListResponse(courses []*domain.Course) courseListResponse {
	out := make([]courseResponse, len(courses))
	for i, c := range courses {
		out[i] = toCourseResponse(c)
	}
	return courseListResponse{Courses: out}
}

func toPurchaseListResponse(purchases []*domain.Purchase, courses []*domain.Course) purchaseListResponse {
	items := make([]purchaseItemResponse, len(purchases))
	for i, p := range purchases {
		items[i] = purchaseItemResponse{
			ID:        p.ID,
			UserID:    p.UserID,
			CourseID:  p.CourseID,
			CreatedAt: p.CreatedAt.UTC(),
		}
	}
	data := make([]courseResponse, len(courses))
	for i, c := range courses {
		data[i] = toCourseResponse(c)
	}
	return purchaseListResponse{Purchases: items, CoursesData: data}
}
