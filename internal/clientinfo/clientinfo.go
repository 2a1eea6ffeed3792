// Package clientinfo derives the true client network address from proxy
// headers and parses User-Agent strings into structured device facts.
package clientinfo

import (
	"net"
	"net/http"
	"strings"

	"github.com/folio/backend/internal/model"
	"github.com/mileusna/useragent"
)

// proxyHeaders are checked in fixed priority order: Cloudflare, nginx,
// standard proxy chain, Akamai.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"X-Real-IP",
	"X-Forwarded-For",
	"True-Client-IP",
}

// ClientAddress returns the real client address for r. Forwarding chains
// may list multiple addresses, so only the part before the first comma is
// taken. Falls back to the transport peer address, then to loopback.
func ClientAddress(r *http.Request) string {
	for _, h := range proxyHeaders {
		if v := r.Header.Get(h); v != "" {
			addr, _, _ := strings.Cut(v, ",")
			if addr = strings.TrimSpace(addr); addr != "" {
				return addr
			}
		}
	}

	if r.RemoteAddr != "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		return host
	}
	return "127.0.0.1"
}

// ParseDevice extracts browser, OS and device facts from a User-Agent
// string. An absent or unrecognizable User-Agent yields the desktop/non-bot
// fallback; parsing never fails the request.
func ParseDevice(uaString string) model.DeviceInfo {
	if strings.TrimSpace(uaString) == "" {
		return model.UnknownDeviceInfo()
	}

	ua := useragent.Parse(uaString)
	if ua.Name == "" && ua.OS == "" {
		return model.UnknownDeviceInfo()
	}

	info := model.DeviceInfo{
		Browser:  joinFamily(ua.Name, ua.Version),
		OS:       joinFamily(ua.OS, ua.OSVersion),
		Device:   ua.Device,
		IsMobile: ua.Mobile,
		IsTablet: ua.Tablet,
		IsPC:     ua.Desktop,
		IsBot:    ua.Bot,
	}
	if info.Device == "" {
		info.Device = "Other"
	}
	if !info.IsMobile && !info.IsTablet && !info.IsPC && !info.IsBot {
		info.IsPC = true
	}
	return info
}

func joinFamily(family, version string) string {
	if family == "" {
		return "Unknown"
	}
	if version == "" {
		return family
	}
	return family + " " + version
}
