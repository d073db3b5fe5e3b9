package transform_test

import (
	"math/bits"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/finitefield/ntt/ring"
	"github.com/finitefield/ntt/transform"
)

type katFile struct {
	Name    string    `yaml:"name"`
	Modulus uint64    `yaml:"modulus"`
	Root    uint64    `yaml:"root"`
	Cases   []katCase `yaml:"cases"`
}

type katCase struct {
	Input  []uint64 `yaml:"input"`
	Output []uint64 `yaml:"output"`
}

// TestKnownAnswers checks the transforms against hand-computed vectors
// stored under testdata. Every algorithm applicable to the vector length
// must reproduce the expected output exactly.
func TestKnownAnswers(t *testing.T) {

	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var kat katFile
		require.NoError(t, yaml.Unmarshal(data, &kat))

		r, err := ring.NewZq(kat.Modulus)
		require.NoError(t, err)
		R := ring.Algebra[uint64](r)

		t.Run(kat.Name, func(t *testing.T) {

			for i, c := range kat.Cases {

				n := len(c.Input)
				require.Equal(t, n, len(c.Output), "case %d", i)

				requireVecEqual(t, R, c.Output, transform.Naive(R)(kat.Root, c.Input))

				if n >= 2 && bits.OnesCount(uint(n)) == 1 {
					f := pow2DIT(R, bits.TrailingZeros(uint(n)))
					requireVecEqual(t, R, c.Output, f(kat.Root, c.Input))
				}
				if n == 4 {
					requireVecEqual(t, R, c.Output, transform.Butterfly4(R)(kat.Root, c.Input))
				}
			}
		})
	}
}
