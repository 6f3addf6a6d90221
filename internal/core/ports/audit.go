package ports

import (
	"context"

	"github.com/courseforge/course-market/internal/core/domain"
)

// AuditSink accepts audit events for asynchronous recording. Enqueue
// must never block request handling; implementations drop or buffer
// under pressure.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
