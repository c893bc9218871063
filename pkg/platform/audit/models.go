package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// EventCategory classifies audit events by their primary purpose so sinks can
// apply different retention.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance, such as
	// processing of a personal identity number.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine activity that may be sampled.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from service logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	Action    string
	Decision  string
	Reason    string
	RequestID string
	// SubjectIDHash is a SHA-256 hash of the identity number being processed.
	// The raw number is never stored.
	SubjectIDHash string
	ClientIP      string
	// Client is a "browser/os" summary of the caller's User-Agent.
	Client string
}

type AuditEvent string

const (
	EventIdentityParsed    AuditEvent = "identity_parsed"
	EventIdentityRejected  AuditEvent = "identity_rejected"
	EventIdentityFormatted AuditEvent = "identity_formatted"
	EventIdentityValidated AuditEvent = "identity_validated"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventIdentityParsed:    CategoryCompliance,
	EventIdentityRejected:  CategoryCompliance,
	EventIdentityFormatted: CategoryCompliance,
	EventIdentityValidated: CategoryOperations,
}

// Category returns the category of a known event, defaulting to operations.
func (e AuditEvent) Category() EventCategory {
	if c, ok := eventCategories[e]; ok {
		return c
	}
	return CategoryOperations
}

// HashSubject returns the hex SHA-256 of a subject identifier.
func HashSubject(subject string) string {
	sum := sha256.Sum256([]byte(subject))
	return hex.EncodeToString(sum[:])
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}
