package admin

import (
	"time"

	audit "personnummer/pkg/platform/audit"
)

// AuditEventResponse is the HTTP response DTO for a recorded audit event.
type AuditEventResponse struct {
	Category      string    `json:"category"`
	Timestamp     time.Time `json:"timestamp"`
	Action        string    `json:"action"`
	Decision      string    `json:"decision"`
	Reason        string    `json:"reason,omitempty"`
	RequestID     string    `json:"request_id,omitempty"`
	SubjectIDHash string    `json:"subject_id_hash,omitempty"`
	ClientIP      string    `json:"client_ip,omitempty"`
	Client        string    `json:"client,omitempty"`
}

// AuditEventsResponse wraps recent audit events for HTTP response.
type AuditEventsResponse struct {
	Events []*AuditEventResponse `json:"events"`
	Total  int                   `json:"total"`
}

func fromEvents(events []audit.Event) *AuditEventsResponse {
	out := make([]*AuditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, &AuditEventResponse{
			Category:      string(e.Category),
			Timestamp:     e.Timestamp,
			Action:        e.Action,
			Decision:      e.Decision,
			Reason:        e.Reason,
			RequestID:     e.RequestID,
			SubjectIDHash: e.SubjectIDHash,
			ClientIP:      e.ClientIP,
			Client:        e.Client,
		})
	}
	return &AuditEventsResponse{Events: out, Total: len(out)}
}
