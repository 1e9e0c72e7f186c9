package settings

import "strings"

// Href turns a stored link value into something a terminal can open.
// Handles for instagram, twitter and youtube expand to profile URLs.
func Href(link SocialLink) string {
	url := strings.TrimSpace(link.URL)
	if link.Platform == PlatformPhone {
		return "tel:" + url
	}

	absolute := strings.HasPrefix(url, "http")
	switch {
	case link.Platform == PlatformInstagram && !absolute:
		url = "https://instagram.com/" + strings.Replace(url, "@", "", 1)
	case link.Platform == PlatformTwitter && !absolute:
		url = "https://twitter.com/" + strings.Replace(url, "@", "", 1)
	case link.Platform == PlatformYouTube && !absolute:
		url = "https://youtube.com/" + url
	}

	if !strings.HasPrefix(url, "http") {
		return "https://" + url
	}
	return url
}

// DisplayLabel returns the link's label, or its raw url when unset.
func DisplayLabel(link SocialLink) string {
	if strings.TrimSpace(link.Label) != "" {
		return link.Label
	}
	return link.URL
}

// LogoLink returns the link the logo points at: the first website link, else
// the first link. ok is false when there are no links.
func LogoLink(cfg Configuration) (SocialLink, bool) {
	for _, l := range cfg.SocialLinks {
		if l.Platform == PlatformWebsite {
			return l, true
		}
	}
	if len(cfg.SocialLinks) > 0 {
		return cfg.SocialLinks[0], true
	}
	return SocialLink{}, false
}
