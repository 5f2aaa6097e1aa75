package core

// Prefs is a small key/value persistence surface for high scores and
// settings. Implementations never panic into the caller: failures are
// reported as false and callers fall back to defaults.
type Prefs interface {
	Save(key string, v any) bool
	Load(key string, dst any) bool
}

// LoadOr loads key from p into a fresh T, returning def when p is nil or the
// load fails.
func LoadOr[T any](p Prefs, key string, def T) T {
	if p == nil {
		return def
	}
	var v T
	if !p.Load(key, &v) {
		return def
	}
	return v
}
