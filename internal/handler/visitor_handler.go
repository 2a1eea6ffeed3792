package handler

import (
	"net/http"

	"github.com/folio/backend/internal/clientinfo"
	"github.com/folio/backend/internal/model"
	"github.com/folio/backend/internal/service"
)

// VisitorHandler exposes the caller's resolved geolocation and device info.
type VisitorHandler struct {
	contactService service.ContactService
}

// NewVisitorHandler creates a VisitorHandler with the given service.
func NewVisitorHandler(contactService service.ContactService) *VisitorHandler {
	return &VisitorHandler{contactService: contactService}
}

type visitorInfoResponse struct {
	IP     model.GeoInfo    `json:"ip"`
	Device model.DeviceInfo `json:"device"`
}

// IPInfo handles GET /api/ip-info. Nothing is persisted.
func (h *VisitorHandler) IPInfo(w http.ResponseWriter, r *http.Request) {
	geo, device := h.contactService.VisitorInfo(r.Context(), clientinfo.ClientAddress(r), r.UserAgent())
	writeJSON(w, http.StatusOK, visitorInfoResponse{IP: geo, Device: device})
}
