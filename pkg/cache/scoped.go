package cache

// ScopedKeyer prefixes every key of an inner [Keyer]. The CLI scopes keys by
// build version so artifacts written by an older release are never reused.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, defaulting to [DefaultKeyer] when nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) PatternKey(opts PatternKeyOpts) string {
	return k.prefix + k.inner.PatternKey(opts)
}

func (k *ScopedKeyer) ArtifactKey(patternKey, format string) string {
	return k.prefix + k.inner.ArtifactKey(patternKey, format)
}
