package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/folio/backend/internal/clientinfo"
	"github.com/folio/backend/internal/sanitize"
	"github.com/folio/backend/internal/service"
)

// Field length bounds for the contact form.
const (
	maxNameLength    = 100
	maxEmailLength   = 254
	maxSubjectLength = 200
	maxMessageLength = 1000

	minNameLength    = 2
	minMessageLength = 10
)

// ContactHandler handles contact form submission and message listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected body for POST /api/contact, as JSON or
// form fields.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type submitResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TelegramSent bool   `json:"telegram_sent"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Submit handles POST /api/contact. The body may be JSON or form-encoded.
// Fields are sanitized and length-bounded before validation; spam-classified
// submissions get a generic success response so detection is not signaled to
// the sender.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, ok := parseSubmitRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	name := sanitize.Clean(req.Name, maxNameLength)
	email := sanitize.Clean(req.Email, maxEmailLength)
	subject := sanitize.Clean(req.Subject, maxSubjectLength)
	message := sanitize.Clean(req.Message, maxMessageLength)

	if len([]rune(name)) < minNameLength {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Name is required (min 2 chars)"})
		return
	}
	if !sanitize.ValidEmail(email) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Valid email is required"})
		return
	}
	if len([]rune(message)) < minMessageLength {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Message is required (min 10 chars)"})
		return
	}

	res := h.contactService.Submit(r.Context(), service.SubmitInput{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}, clientinfo.ClientAddress(r), r.UserAgent())

	if res.Spam {
		// Indistinguishable from success on purpose.
		writeJSON(w, http.StatusOK, submitResponse{
			Success: true,
			Message: "Message received",
		})
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Success:      true,
		Message:      "Thank you! Your message has been received.",
		TelegramSent: res.NotificationSent,
	})
}

// parseSubmitRequest reads the body as JSON when the Content-Type says so,
// otherwise as form fields.
func parseSubmitRequest(r *http.Request) (submitRequest, bool) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return submitRequest{}, false
		}
		return req, true
	}

	if err := r.ParseForm(); err != nil {
		return submitRequest{}, false
	}
	return submitRequest{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}, true
}

// Messages handles GET /api/messages, returning stored submissions newest
// first.
func (h *ContactHandler) Messages(w http.ResponseWriter, r *http.Request) {
	messages := h.contactService.Messages(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"count":    len(messages),
		"messages": messages,
	})
}
