package model

// GeoInfo holds geolocation attributes derived from a network address.
// All fields default to "Unknown" (country_code "??") when the upstream
// lookup fails; IP always carries the address that was queried.
type GeoInfo struct {
	IP          string `json:"ip"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Region      string `json:"region"`
	City        string `json:"city"`
	ISP         string `json:"isp"`
	Org         string `json:"org"`
	AS          string `json:"as"`
}

// UnknownGeoInfo returns the fallback GeoInfo for addr, used whenever the
// upstream lookup errors, times out, or reports a non-success status.
func UnknownGeoInfo(addr string) GeoInfo {
	return GeoInfo{
		IP:          addr,
		Country:     "Unknown",
		CountryCode: "??",
		Region:      "Unknown",
		City:        "Unknown",
		ISP:         "Unknown",
		Org:         "Unknown",
		AS:          "Unknown",
	}
}

// DeviceInfo holds browser/OS/device attributes parsed from a User-Agent
// string.
type DeviceInfo struct {
	Browser  string `json:"browser"`
	OS       string `json:"os"`
	Device   string `json:"device"`
	IsMobile bool   `json:"is_mobile"`
	IsTablet bool   `json:"is_tablet"`
	IsPC     bool   `json:"is_pc"`
	IsBot    bool   `json:"is_bot"`
}

// UnknownDeviceInfo returns the desktop/non-bot fallback used when the
// User-Agent string is absent or unparseable.
func UnknownDeviceInfo() DeviceInfo {
	return DeviceInfo{
		Browser: "Unknown",
		OS:      "Unknown",
		Device:  "Unknown",
		IsPC:    true,
	}
}

// Submission is one validated, enriched contact-form entry. Submissions are
// immutable once created; the store only ever appends them.
type Submission struct {
	// ID is the creation time in Unix milliseconds. Monotonic under normal
	// clock behavior; not used for ordering beyond display.
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Subject    string     `json:"subject"`
	Message    string     `json:"message"`
	Timestamp  string     `json:"timestamp"`
	IPInfo     GeoInfo    `json:"ip_info"`
	DeviceInfo DeviceInfo `json:"device_info"`
}
