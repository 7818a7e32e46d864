package animethemes

import (
	"regexp"
	"strings"
)

// knownIDSites are the external sites whose resource links carry a numeric
// anime ID this package knows how to extract.
var knownIDSites = map[string]struct{}{
	"mal":         {},
	"myanimelist": {},
	"anilist":     {},
	"anidb":       {},
}

// externalIDPatterns are tried in order against a resource link; the first
// submatch wins. AniDB gets one pattern covering both its current and its
// historical perl-bin URL form.
var externalIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`anilist\.co/anime/(\d+)`),
	regexp.MustCompile(`myanimelist\.net/anime/(\d+)`),
	regexp.MustCompile(`anidb\.net/(?:anime/|perl-bin/animedb\.pl\?show=anime&aid=)(\d+)`),
}

// ExternalID extracts the anime's numeric ID on an external tracking site
// from the hydrated resource links. The site name is matched
// case-insensitively ("MAL" finds a resource whose site is "mal" and vice
// versa). Resources for sites that carry no numeric anime ID (Twitter,
// official pages) are skipped without pattern matching. The second return
// is false when no matching resource link yields an ID. No network is
// touched; only hydrated data is read.
func (a *Anime) ExternalID(site string) (string, bool) {
	for _, res := range a.Resources {
		if res.Site == nil || res.Link == nil {
			continue
		}
		if !strings.EqualFold(*res.Site, site) {
			continue
		}
		if _, ok := knownIDSites[strings.ToLower(*res.Site)]; !ok {
			continue
		}
		for _, pattern := range externalIDPatterns {
			if m := pattern.FindStringSubmatch(*res.Link); m != nil {
				return m[1], true
			}
		}
	}
	return "", false
}
