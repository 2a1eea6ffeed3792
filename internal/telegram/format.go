package telegram

import (
	"fmt"
	"strings"

	"github.com/folio/backend/internal/model"
)

const divider = "━━━━━━━━━━━━━━━━━━━━"

// FormatMessage renders the notification text for a submission. Field
// values are inserted verbatim; they are sanitized upstream.
func FormatMessage(sub model.Submission) string {
	geo := sub.IPInfo
	dev := sub.DeviceInfo

	return fmt.Sprintf(`📬 *New Contact Message*

👤 *Name:* %s
📧 *Email:* %s
📝 *Subject:* %s

💬 *Message:*
%s

%s
🌐 *Visitor Information*
%s

🔢 *IP:* `+"`%s`"+`
%s *Location:* %s, %s, %s
🏢 *ISP:* %s
🏛 *Organization:* %s

%s *Device:* %s
🖥 *OS:* %s
🌐 *Browser:* %s

🕐 *Time:* %s`,
		sub.Name, sub.Email, sub.Subject,
		sub.Message,
		divider, divider,
		geo.IP,
		countryFlag(geo.CountryCode), geo.City, geo.Region, geo.Country,
		geo.ISP,
		geo.Org,
		deviceGlyph(dev), dev.Device,
		dev.OS,
		dev.Browser,
		sub.Timestamp,
	)
}

// countryFlag maps a two-letter country code to its Unicode regional
// indicator pair. Anything that is not exactly two ASCII letters (including
// the "??" unknown marker) gets the globe glyph.
func countryFlag(code string) string {
	code = strings.ToUpper(code)
	runes := []rune(code)
	if len(runes) != 2 {
		return "🌍"
	}
	var b strings.Builder
	for _, r := range runes {
		if r < 'A' || r > 'Z' {
			return "🌍"
		}
		b.WriteRune(0x1F1E6 + r - 'A')
	}
	return b.String()
}

// deviceGlyph picks a glyph by priority mobile > tablet > desktop.
func deviceGlyph(dev model.DeviceInfo) string {
	switch {
	case dev.IsMobile:
		return "📱"
	case dev.IsTablet:
		return "📲"
	default:
		return "💻"
	}
}
