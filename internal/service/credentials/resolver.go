package credentials

import "strings"

// Keys shorter than this are treated as placeholder noise, not credentials.
const minKeyLength = 6

// Resolver picks the API key for an analysis run. A usable key saved on the
// user profile always wins over the instance-level default.
type Resolver struct {
	fallback string
}

func NewResolver(fallback string) *Resolver {
	return &Resolver{fallback: fallback}
}

// Resolve returns the key to use, or ok=false when neither source holds a
// usable one.
func (r *Resolver) Resolve(profileKey string) (string, bool) {
	if key := strings.TrimSpace(profileKey); usable(key) {
		return key, true
	}
	if key := strings.TrimSpace(r.fallback); usable(key) {
		return key, true
	}
	return "", false
}

// Available reports whether any usable key exists without revealing it.
func (r *Resolver) Available(profileKey string) bool {
	_, ok := r.Resolve(profileKey)
	return ok
}

func usable(key string) bool {
	return len(key) >= minKeyLength
}
