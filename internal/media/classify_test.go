package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		mime     string
		fileName string
		want     Type
	}{
		{"image/gif", "foo.png", TypeGIF}, // MIME wins
		{"image/png", "foo.gif", TypeGIF}, // filename wins
		{"image/png", "FOO.GIF", TypeGIF},
		{"video/mp4", "x", TypeVideo},
		{"video/webm", "clip.webm", TypeVideo},
		{"audio/mpeg", "song.mp3", TypeAudio},
		{"image/jpeg", "photo.jpg", TypeImage},
		{"application/octet-stream", "x", TypeImage}, // default
		{"", "", TypeImage},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.mime, tt.fileName), "Classify(%q, %q)", tt.mime, tt.fileName)
	}
}

func TestValidType(t *testing.T) {
	for _, s := range []string{"IMAGE", "VIDEO", "AUDIO", "GIF", "YOUTUBE", "TWITTER", "INSTAGRAM"} {
		assert.True(t, ValidType(s), s)
	}
	assert.False(t, ValidType("image"))
	assert.False(t, ValidType(""))
	assert.False(t, ValidType("PDF"))
}
