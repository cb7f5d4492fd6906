package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeechCacheRoundTrip(t *testing.T) {
	c := NewSpeechCache()

	_, found := c.Get("متن")
	assert.False(t, found)

	c.Set("متن", []byte("clip"))
	audio, found := c.Get("متن")
	require.True(t, found)
	assert.Equal(t, []byte("clip"), audio)

	// Keys are content-addressed, so distinct texts never collide.
	_, found = c.Get("متن دیگر")
	assert.False(t, found)
}

func TestSpeechCacheOverwrite(t *testing.T) {
	c := NewSpeechCache()

	c.Set("متن", []byte("v1"))
	c.Set("متن", []byte("v2"))

	audio, found := c.Get("متن")
	require.True(t, found)
	assert.Equal(t, []byte("v2"), audio)
}
