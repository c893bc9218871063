// Package service exposes identity number parsing to transports. It resolves
// the reference instant from the request context, translates core errors into
// domain errors, and records metrics, traces and audit events. Raw identity
// numbers never leave this package except as a SHA-256 hash.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"personnummer/internal/identity/metrics"
	dErrors "personnummer/pkg/domain-errors"
	"personnummer/pkg/personnummer"
	audit "personnummer/pkg/platform/audit"
	"personnummer/pkg/platform/middleware/metadata"
	"personnummer/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks AuditPublisher

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

const tracerName = "personnummer/internal/identity/service"

const (
	opParse    = "parse"
	opValidate = "validate"
	opFormat   = "format"
)

// Service orchestrates identity number parsing.
type Service struct {
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service. Without options it logs nowhere, records no
// metrics or audit events, and traces through the global provider.
func New(opts ...Option) *Service {
	s := &Service{
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse validates input at the request's reference instant.
//
// Errors: CodeValidation wrapping a *personnummer.ParseError for bad data;
// CodeBadRequest when input is not a string.
func (s *Service) Parse(ctx context.Context, input any) (personnummer.Identity, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Parse")
	defer span.End()

	id, err := s.parse(ctx, opParse, input, span)
	if err != nil {
		return personnummer.Identity{}, err
	}
	s.emit(ctx, audit.EventIdentityParsed, audit.HashSubject(id.String()), "accepted", metrics.ResultOK)
	return id, nil
}

// Validate reports whether input is a valid identity number. It never fails;
// non-string input is simply invalid.
func (s *Service) Validate(ctx context.Context, input any) bool {
	ctx, span := s.tracer.Start(ctx, "identity.Validate")
	defer span.End()

	id, err := s.parse(ctx, opValidate, input, span)
	if err != nil {
		return false
	}
	s.emit(ctx, audit.EventIdentityValidated, audit.HashSubject(id.String()), "valid", metrics.ResultOK)
	return true
}

// Format parses input and renders it in the requested length at the
// request's reference instant.
//
// Errors: as Parse, plus CodeBadRequest for lengths other than 10 or 12.
func (s *Service) Format(ctx context.Context, input any, length int) (string, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Format")
	defer span.End()
	span.SetAttributes(attribute.Int("personnummer.length", length))

	id, err := s.parse(ctx, opFormat, input, span)
	if err != nil {
		return "", err
	}
	formatted, err := id.Format(length, requestcontext.Now(ctx))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeBadRequest, "length must be 10 or 12")
	}
	s.emit(ctx, audit.EventIdentityFormatted, audit.HashSubject(id.String()), "accepted", metrics.ResultOK)
	return formatted, nil
}

func (s *Service) parse(ctx context.Context, op string, input any, span trace.Span) (personnummer.Identity, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveLatency(op, time.Since(start)) }()

	requestID := requestcontext.RequestID(ctx)
	id, err := personnummer.ParseAny(input, requestcontext.Now(ctx))
	if err != nil {
		result, derr := translate(err)
		span.SetAttributes(attribute.String("personnummer.result", result))
		s.metrics.IncrementOutcome(op, result)

		subject := subjectHash(input)
		s.logger.InfoContext(ctx, "identity number rejected",
			"request_id", requestID,
			"operation", op,
			"result", result,
			"subject_hash", subject,
		)
		decision := "rejected"
		event := audit.EventIdentityRejected
		if op == opValidate {
			decision = "invalid"
			event = audit.EventIdentityValidated
		}
		s.emit(ctx, event, subject, decision, result)
		return personnummer.Identity{}, derr
	}

	span.SetAttributes(
		attribute.String("personnummer.result", metrics.ResultOK),
		attribute.Bool("personnummer.coordination", id.IsCoordinationNumber()),
	)
	s.metrics.IncrementOutcome(op, metrics.ResultOK)
	if id.IsCoordinationNumber() {
		s.metrics.IncrementCoordinationNumber()
	}
	s.logger.DebugContext(ctx, "identity number accepted",
		"request_id", requestID,
		"operation", op,
		"coordination", id.IsCoordinationNumber(),
	)
	return id, nil
}

// translate maps a core error to a metrics result label and a domain error.
func translate(err error) (string, error) {
	if errors.Is(err, personnummer.ErrNotString) {
		return metrics.ResultBadRequest, dErrors.Wrap(err, dErrors.CodeBadRequest, "input must be a string")
	}
	var pe *personnummer.ParseError
	if errors.As(err, &pe) {
		return string(pe.Kind), dErrors.Wrap(err, dErrors.CodeValidation, pe.Message)
	}
	return string(dErrors.CodeInternal), dErrors.Wrap(err, dErrors.CodeInternal, "failed to parse identity number")
}

// subjectHash hashes rejected input so repeated attempts can be correlated
// without storing the raw value.
func subjectHash(input any) string {
	s, ok := input.(string)
	if !ok {
		return ""
	}
	return audit.HashSubject(strings.TrimSpace(s))
}

func (s *Service) emit(ctx context.Context, event audit.AuditEvent, subject, decision, reason string) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Category:      event.Category(),
		Timestamp:     requestcontext.Now(ctx),
		Action:        string(event),
		Decision:      decision,
		Reason:        reason,
		RequestID:     requestcontext.RequestID(ctx),
		SubjectIDHash: subject,
		ClientIP:      metadata.GetClientIP(ctx),
		Client:        metadata.GetClient(ctx),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"request_id", requestcontext.RequestID(ctx),
			"action", string(event),
			"error", err,
		)
	}
}
