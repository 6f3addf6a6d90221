package domain

import "time"

// AuditAction identifies the kind of security-relevant event recorded
// in the audit trail.
type AuditAction string

const (
	AuditSignup         AuditAction = "signup"
	AuditSigninOK       AuditAction = "signin_ok"
	AuditSigninFailed   AuditAction = "signin_failed"
	AuditMutationDenied AuditAction = "mutation_denied"
)

// AuditEvent is an append-only record of an authentication or
// authorization decision. Events for the same principal are processed
// in order; events for different principals may interleave.
type AuditEvent struct {
	PrincipalID string      `json:"principal_id" bson:"principal_id,omitempty"`
	Kind        Kind        `json:"kind" bson:"kind"`
	Action      AuditAction `json:"action" bson:"action"`
	Email       string      `json:"email,omitempty" bson:"email,omitempty"`
	ResourceID  string      `json:"resource_id,omitempty" bson:"resource_id,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at" bson:"occurred_at"`
}

// ShardKey is the value audit events are sharded on so that a single
// principal's history stays ordered. Falls back to email for events
// that happen before a principal id exists (failed signins).
func (e AuditEvent) ShardKey() string {
	if e.PrincipalID != "" {
		return e.PrincipalID
	}
	return e.Email
}
