package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Limits applied to ad content fields.
const (
	MaxHeadlineLen  = 25
	MaxAdTextLen    = 200
	MaxBrandNameLen = 50
	MaxSocialLinks  = 3
)

// Platform names a social network an ad may link to. Platform names are the
// exact values the backend stores, so they are capitalised.
type Platform string

const (
	PlatformX         Platform = "X"
	PlatformInstagram Platform = "Instagram"
	PlatformTikTok    Platform = "TikTok"
	PlatformFacebook  Platform = "Facebook"
	PlatformYouTube   Platform = "YouTube"
	PlatformWebsite   Platform = "Website"
	PlatformOther     Platform = "Other"
)

// platformDomains restricts the hosts a link may point at. Website and Other
// accept any valid URL and are absent from the map.
var platformDomains = map[Platform][]string{
	PlatformX:         {"x.com", "twitter.com"},
	PlatformInstagram: {"instagram.com"},
	PlatformTikTok:    {"tiktok.com"},
	PlatformFacebook:  {"facebook.com"},
	PlatformYouTube:   {"youtube.com"},
}

// AllPlatforms lists the selectable platforms in display order.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformX, PlatformInstagram, PlatformTikTok,
		PlatformFacebook, PlatformYouTube, PlatformWebsite, PlatformOther,
	}
}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformX, PlatformInstagram, PlatformTikTok, PlatformFacebook,
		PlatformYouTube, PlatformWebsite, PlatformOther:
		return true
	}
	return false
}

// AllowedDomains returns the hosts accepted for the platform, nil when any
// host is accepted.
func (p Platform) AllowedDomains() []string {
	return platformDomains[p]
}

// SocialLink is one outbound link attached to an ad.
type SocialLink struct {
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
}

// CheckURL validates the link URL against the platform's domain allowlist.
// The host must equal an allowed domain or be a subdomain of one. Platforms
// without an allowlist accept any http(s) URL.
func (l SocialLink) CheckURL() error {
	u, err := url.Parse(l.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid URL for %s: %s", l.Platform, l.URL)
	}
	domains := l.Platform.AllowedDomains()
	if len(domains) == 0 {
		return nil
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return nil
		}
	}
	return fmt.Errorf("URL for %s must be from %s", l.Platform, strings.Join(domains, " or "))
}

// AdContent is the creative attached to a campaign.
type AdContent struct {
	Headline    string       `json:"headline"`
	TextContent string       `json:"text_content"`
	BrandName   string       `json:"brand_name"`
	ImageURL    string       `json:"img_url"`
	SocialLinks []SocialLink `json:"social_links"`
}

// Upload is a file selected for the ad image. Name is the client-side file
// name sent as the multipart part name; Data is the raw file content.
type Upload struct {
	Name string
	Data []byte
}

// AdDraft is the in-progress creative inside the wizard. At most one of
// File and ImageURL is sent; a retained existing image keeps ImageURL as
// fetched so editing without touching the image does not clear it.
type AdDraft struct {
	Headline    string
	TextContent string
	BrandName   string
	ImageURL    string
	File        *Upload
	SocialLinks []SocialLink
}

// HasImage reports whether the draft carries an image, either a new upload
// or a retained URL.
func (d AdDraft) HasImage() bool {
	return d.File != nil || strings.TrimSpace(d.ImageURL) != ""
}
