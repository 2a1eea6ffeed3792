package service

import (
	"context"

	"github.com/folio/backend/internal/model"
)

// SubmitInput carries the sanitized, validated form fields for a submission.
type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmitResult reports what happened to a submission. Persistence and
// notification are best-effort: their failure is recorded here, not raised.
type SubmitResult struct {
	// Spam marks a silently dropped submission; nothing was stored or sent.
	Spam             bool
	Stored           bool
	NotificationSent bool
	Submission       model.Submission
}

// GeoLookup resolves a network address to location attributes.
type GeoLookup interface {
	Lookup(ctx context.Context, addr string) model.GeoInfo
}

// Notifier delivers a rendered notification text and reports acknowledgement.
type Notifier interface {
	Send(ctx context.Context, text string) bool
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit classifies, enriches, persists and forwards one submission.
	Submit(ctx context.Context, in SubmitInput, clientAddr, userAgent string) SubmitResult

	// Messages returns stored submissions newest first.
	Messages(ctx context.Context) []model.Submission

	// VisitorInfo resolves geolocation and device facts for a caller
	// without persisting anything.
	VisitorInfo(ctx context.Context, clientAddr, userAgent string) (model.GeoInfo, model.DeviceInfo)
}
