package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/folio/backend/internal/model"
)

func TestIPInfo_ReturnsGeoAndDevice(t *testing.T) {
	mock := &mockContactService{
		visitorInfoFunc: func(ctx context.Context, clientAddr, userAgent string) (model.GeoInfo, model.DeviceInfo) {
			g := model.UnknownGeoInfo(clientAddr)
			g.Country = "Japan"
			g.CountryCode = "JP"
			d := model.UnknownDeviceInfo()
			d.Browser = "Chrome 120.0"
			return g, d
		},
	}
	h := NewVisitorHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/ip-info", nil)
	req.Header.Set("CF-Connecting-IP", "1.2.3.4")
	rec := httptest.NewRecorder()
	h.IPInfo(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp visitorInfoResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.IP.IP != "1.2.3.4" || resp.IP.Country != "Japan" {
		t.Errorf("unexpected geo %+v", resp.IP)
	}
	if resp.Device.Browser != "Chrome 120.0" {
		t.Errorf("unexpected device %+v", resp.Device)
	}
}

func TestIPInfo_LookupFailure_StillResponds(t *testing.T) {
	h := NewVisitorHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/ip-info", nil)
	rec := httptest.NewRecorder()
	h.IPInfo(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 even when lookup falls back, got %d", rec.Code)
	}
	var resp visitorInfoResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.IP.Country != "Unknown" {
		t.Errorf("expected Unknown fallback, got %+v", resp.IP)
	}
}
