package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

// Getenv reads an environment variable and trims the space.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// ReadEmoji reads an environment variable as emoji/no-emoji.
func ReadEmoji(key string, ppfmt *pp.PP) bool {
	valEmoji := Getenv(key)
	if valEmoji == "" {
		return true
	}

	emoji, err := strconv.ParseBool(valEmoji)
	if err != nil {
		(*ppfmt).Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, valEmoji, err)
		return false
	}

	*ppfmt = (*ppfmt).SetEmoji(emoji)

	return true
}

// ReadString reads an environment variable as a plain string, keeping
// the existing value when the variable is absent.
func ReadString(key string, field *string) {
	if val := Getenv(key); val != "" {
		*field = val
	}
}
