// Package media classifies uploads, parses social embed URLs, and talks to
// the S3-compatible media host.
package media

import "strings"

// Type tags a tier item's media. The first four are persisted; the embed
// types are carried on items via embedId.
type Type string

const (
	TypeImage Type = "IMAGE"
	TypeVideo Type = "VIDEO"
	TypeAudio Type = "AUDIO"
	TypeGIF   Type = "GIF"

	TypeYouTube   Type = "YOUTUBE"
	TypeTwitter   Type = "TWITTER"
	TypeInstagram Type = "INSTAGRAM"
)

func ValidType(s string) bool {
	switch Type(s) {
	case TypeImage, TypeVideo, TypeAudio, TypeGIF, TypeYouTube, TypeTwitter, TypeInstagram:
		return true
	}
	return false
}

// Classify maps a MIME type and file name to a media Type. GIF is checked
// first on either signal, then video/audio by MIME prefix; everything else
// is treated as an image.
func Classify(mimeType, fileName string) Type {
	mime := strings.ToLower(mimeType)
	if mime == "image/gif" || strings.HasSuffix(strings.ToLower(fileName), ".gif") {
		return TypeGIF
	}
	if strings.HasPrefix(mime, "video/") {
		return TypeVideo
	}
	if strings.HasPrefix(mime, "audio/") {
		return TypeAudio
	}
	return TypeImage
}
