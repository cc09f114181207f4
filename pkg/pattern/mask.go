package pattern

import (
	"strings"

	"github.com/matzehuels/foldcut/pkg/errors"
)

// Mask is the per-direction activation list of a building block.
type Mask []bool

// AllActive returns a new mask of n true values.
func AllActive(n int) Mask {
	m := make(Mask, n)
	for i := range m {
		m[i] = true
	}
	return m
}

// Check verifies that m has one entry per direction of hub h.
func (m Mask) Check(h Hub) error {
	if len(m) != h.Count() {
		return errors.New(errors.ErrCodeMaskLength,
			"activation mask has %d entries, %s hub needs %d", len(m), h, h.Count())
	}
	return nil
}

// Active returns the number of true entries.
func (m Mask) Active() int {
	n := 0
	for _, on := range m {
		if on {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	return append(Mask(nil), m...)
}

func (m Mask) String() string {
	var b strings.Builder
	for _, on := range m {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
