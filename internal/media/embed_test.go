package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmbedURLYouTube(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://youtube.com/shorts/dQw4w9WgXcQ",
	}
	for _, url := range urls {
		embed := ParseEmbedURL(url)
		require.NotNil(t, embed, url)
		assert.Equal(t, TypeYouTube, embed.Type, url)
		assert.Equal(t, "dQw4w9WgXcQ", embed.EmbedID, url)
		assert.Equal(t, url, embed.MediaURL, url)
	}
}

func TestParseEmbedURLTwitter(t *testing.T) {
	for _, url := range []string{
		"https://twitter.com/someone/status/1234567890123456789",
		"https://x.com/someone/status/1234567890123456789",
	} {
		embed := ParseEmbedURL(url)
		require.NotNil(t, embed, url)
		assert.Equal(t, TypeTwitter, embed.Type)
		assert.Equal(t, "1234567890123456789", embed.EmbedID)
	}
}

func TestParseEmbedURLInstagram(t *testing.T) {
	embed := ParseEmbedURL("https://www.instagram.com/p/Cxyz_123-ab/")
	require.NotNil(t, embed)
	assert.Equal(t, TypeInstagram, embed.Type)
	assert.Equal(t, "Cxyz_123-ab", embed.EmbedID)

	embed = ParseEmbedURL("https://www.instagram.com/reel/Babc123/")
	require.NotNil(t, embed)
	assert.Equal(t, TypeInstagram, embed.Type)
	assert.Equal(t, "Babc123", embed.EmbedID)
}

func TestParseEmbedURLUnrecognized(t *testing.T) {
	assert.Nil(t, ParseEmbedURL("https://example.com"))
	assert.Nil(t, ParseEmbedURL("not a url"))
	assert.Nil(t, ParseEmbedURL(""))
	// Too-short video id does not match.
	assert.Nil(t, ParseEmbedURL("https://youtu.be/short"))
}
