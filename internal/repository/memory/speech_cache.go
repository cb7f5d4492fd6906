package memory

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

// SpeechCache keeps recently synthesized audio clips in memory so repeated
// playback of the same reply does not hit the TTS collaborator again.
type SpeechCache struct {
	cache *cache.Cache
}

func NewSpeechCache() *SpeechCache {
	// Clips expire after an hour; expired entries are purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SpeechCache{
		cache: c,
	}
}

func (s *SpeechCache) Get(text string) ([]byte, bool) {
	if x, found := s.cache.Get(key(text)); found {
		return x.([]byte), true
	}
	return nil, false
}

func (s *SpeechCache) Set(text string, audio []byte) {
	s.cache.Set(key(text), audio, cache.DefaultExpiration)
}

func key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
