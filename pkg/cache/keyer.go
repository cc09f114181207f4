package cache

import "github.com/matzehuels/foldcut/pkg/pattern"

// PatternKeyOpts is everything that determines the generated geometry.
type PatternKeyOpts struct {
	Family string         `json:"family"`
	Hub    string         `json:"hub"`
	Rows   int            `json:"rows"`
	Cols   int            `json:"cols"`
	Origin [2]float64     `json:"origin"`
	Params pattern.Params `json:"params"`
}

// Keyer derives cache keys.
type Keyer interface {
	// PatternKey identifies a generated primitive sequence.
	PatternKey(opts PatternKeyOpts) string
	// ArtifactKey identifies one encoded output of a pattern.
	ArtifactKey(patternKey, format string) string
}

// DefaultKeyer hashes its inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) PatternKey(opts PatternKeyOpts) string {
	return hashKey("pattern", opts)
}

func (DefaultKeyer) ArtifactKey(patternKey, format string) string {
	return hashKey("artifact", patternKey, format)
}
