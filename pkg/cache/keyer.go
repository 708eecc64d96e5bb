package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// CardKeyOpts captures every render option that affects card output.
// Two requests that differ in any field must map to different keys.
type CardKeyOpts struct {
	Layout            string   `json:"layout"`
	LangsCount        int      `json:"langs_count"`
	Hide              []string `json:"hide,omitempty"`
	CardWidth         float64  `json:"card_width"`
	Theme             string   `json:"theme"`
	TitleColor        string   `json:"title_color"`
	TextColor         string   `json:"text_color"`
	BackgroundColor   string   `json:"bg_color"`
	BorderColor       string   `json:"border_color"`
	BorderRadius      float64  `json:"border_radius"`
	HideTitle         bool     `json:"hide_title"`
	HideBorder        bool     `json:"hide_border"`
	CustomTitle       string   `json:"custom_title"`
	Locale            string   `json:"locale"`
	DisableAnimations bool     `json:"disable_animations"`
}

// CardKey generates a stable cache key for a rendered card.
// The key format is: card:{username}:hash(opts).
func CardKey(username string, opts CardKeyOpts) string {
	return hashKey("card:"+username, opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}
