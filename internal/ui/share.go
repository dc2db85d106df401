package ui

import (
	"net/url"
	"strings"
)

// ShareLink is one social-sharing target for a posting.
type ShareLink struct {
	Name string
	URL  string
}

// ShareLinks builds the Facebook, Twitter, LinkedIn, email and WhatsApp
// share URLs for a posting link.
func ShareLinks(link string) []ShareLink {
	enc := encodeURIComponent(link)
	return []ShareLink{
		{Name: "Facebook", URL: "https://www.facebook.com/sharer/sharer.php?u=" + enc},
		{Name: "Twitter", URL: "https://twitter.com/intent/tweet?url=" + enc},
		{Name: "LinkedIn", URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + enc},
		{Name: "Email", URL: "mailto:?subject=Check out this job&body=" + enc},
		{Name: "WhatsApp", URL: "https://api.whatsapp.com/send?text=" + enc},
	}
}

// ShowOriginalAd reports whether the "View Original Ad" link is offered.
// Links back to dealcheck listings are suppressed.
func ShowOriginalAd(originalAd string) bool {
	return originalAd != "" && !strings.Contains(originalAd, "dealcheck")
}

// encodeURIComponent escapes s like the browser function of the same name:
// spaces become %20 and !'()* are left alone.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	r := strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")
	return r.Replace(escaped)
}
