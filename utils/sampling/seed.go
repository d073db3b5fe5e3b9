package sampling

import (
	"bytes"

	"github.com/zeebo/blake3"
)

// KeySize is the byte-length of PRNG keys derived by KeyFromLabel.
const KeySize = 32

// KeyFromLabel derives a KeyedPRNG key by hashing a domain-separation label
// together with optional context bytes. The same label and context always
// derive the same key, giving tests and samplers reproducible yet
// well-separated streams.
func KeyFromLabel(label string, context ...[]byte) []byte {
	hasher := blake3.New()
	buf := new(bytes.Buffer)
	buf.WriteString(label)
	for _, c := range context {
		buf.Write(c)
	}
	hasher.Write(buf.Bytes())

	sum := hasher.Sum(nil)
	return sum[:KeySize]
}
