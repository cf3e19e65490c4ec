package media

import "regexp"

// Embed is a recognized social media link.
type Embed struct {
	Type     Type
	EmbedID  string
	MediaURL string
}

// Patterns are tried in order; first match wins.
var embedPatterns = []struct {
	typ Type
	re  *regexp.Regexp
}{
	{TypeYouTube, regexp.MustCompile(`youtube\.com/watch\?v=([A-Za-z0-9_-]{11})`)},
	{TypeYouTube, regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`)},
	{TypeYouTube, regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`)},
	{TypeYouTube, regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`)},
	{TypeTwitter, regexp.MustCompile(`(?:twitter|x)\.com/[^/]+/status/(\d+)`)},
	{TypeInstagram, regexp.MustCompile(`instagram\.com/p/([A-Za-z0-9_-]+)`)},
	{TypeInstagram, regexp.MustCompile(`instagram\.com/reel/([A-Za-z0-9_-]+)`)},
}

// ParseEmbedURL recognizes YouTube, Twitter/X and Instagram URLs. A nil
// result means the URL is unrecognized and the caller must reject it.
func ParseEmbedURL(url string) *Embed {
	for _, p := range embedPatterns {
		if m := p.re.FindStringSubmatch(url); m != nil {
			return &Embed{Type: p.typ, EmbedID: m[1], MediaURL: url}
		}
	}
	return nil
}
