// Package naming builds the output file names used by the renamer
package naming

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	alphanumeric   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	dateTimeLayout = "20060102150405"
	suffixLength   = 5
)

// Namer generates names of the form <YYYYMMDDHHMMSS><ms:3><random:5><index:5>.
// Names are unique only with high probability.
type Namer struct {
	now  func() time.Time
	rand *rand.Rand
}

// New returns a Namer using the local wall clock and a randomly seeded source
func New() *Namer {
	return &Namer{
		now:  time.Now,
		rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewWithSource returns a Namer with an injected clock and random source
func NewWithSource(now func() time.Time, src rand.Source) *Namer {
	return &Namer{
		now:  now,
		rand: rand.New(src),
	}
}

// Generate returns a new name ending in index zero-padded to five digits
func (n *Namer) Generate(index uint32) string {
	now := n.now().Local()

	var b strings.Builder
	b.WriteString(now.Format(dateTimeLayout))
	fmt.Fprintf(&b, "%03d", now.Nanosecond()/int(time.Millisecond))
	for i := 0; i < suffixLength; i++ {
		b.WriteByte(alphanumeric[n.rand.IntN(len(alphanumeric))])
	}
	fmt.Fprintf(&b, "%05d", index)

	return b.String()
}

var defaultNamer = New()

// GenerateName generates a name with the package default Namer
func GenerateName(index uint32) string {
	return defaultNamer.Generate(index)
}
