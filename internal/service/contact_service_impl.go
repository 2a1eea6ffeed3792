package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/folio/backend/internal/clientinfo"
	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/sanitize"
	"github.com/folio/backend/internal/store"
	"github.com/folio/backend/internal/telegram"
)

const noSubjectPlaceholder = "(No subject)"

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	store    store.MessageStore
	geo      GeoLookup
	notifier Notifier
}

// NewContactService creates a ContactService backed by the given store,
// geolocation client and notifier.
func NewContactService(st store.MessageStore, geo GeoLookup, notifier Notifier) ContactService {
	return &contactServiceImpl{store: st, geo: geo, notifier: notifier}
}

// Submit runs the submission pipeline: spam classification, client
// enrichment, persistence and notification. Spam is dropped without a
// trace visible to the sender. Persistence and notification are attempted
// independently; either may fail without failing the submission.
func (s *contactServiceImpl) Submit(ctx context.Context, in SubmitInput, clientAddr, userAgent string) SubmitResult {
	if sanitize.Spam(in.Name + " " + in.Subject + " " + in.Message) {
		slog.Info("spam submission dropped", "email", in.Email, "addr", clientAddr)
		return SubmitResult{Spam: true}
	}

	geoInfo := s.geo.Lookup(ctx, clientAddr)
	deviceInfo := clientinfo.ParseDevice(userAgent)

	subject := in.Subject
	if subject == "" {
		subject = noSubjectPlaceholder
	}

	now := time.Now()
	sub := model.Submission{
		ID:         now.UnixMilli(),
		Name:       in.Name,
		Email:      in.Email,
		Subject:    subject,
		Message:    in.Message,
		Timestamp:  now.Format(time.RFC3339),
		IPInfo:     geoInfo,
		DeviceInfo: deviceInfo,
	}

	stored := true
	if err := s.store.Append(ctx, sub); err != nil {
		slog.Error("failed to persist submission", "id", sub.ID, "error", err)
		stored = false
	}

	sent := s.notifier.Send(ctx, telegram.FormatMessage(sub))

	slog.Info("new contact message",
		"name", sub.Name,
		"email", sub.Email,
		"country", geoInfo.Country,
		"browser", deviceInfo.Browser,
		"stored", stored,
		"telegram_sent", sent,
	)

	return SubmitResult{Stored: stored, NotificationSent: sent, Submission: sub}
}

// Messages returns stored submissions in reverse insertion order.
func (s *contactServiceImpl) Messages(ctx context.Context) []model.Submission {
	return s.store.ListAll(ctx)
}

// VisitorInfo resolves geolocation and device facts for the caller.
func (s *contactServiceImpl) VisitorInfo(ctx context.Context, clientAddr, userAgent string) (model.GeoInfo, model.DeviceInfo) {
	return s.geo.Lookup(ctx, clientAddr), clientinfo.ParseDevice(userAgent)
}
