package sessionid

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

// TestNewGeneratorConfig checks which configs NewGenerator accepts.
func TestNewGeneratorConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		cfg    *Config
		expErr bool
	}{
		{
			name: "default",
			cfg:  DefaultConfig(),
		},
		{
			name:   "nil config",
			cfg:    nil,
			expErr: true,
		},
		{
			name:   "nil reader",
			cfg:    &Config{Size: RandomSize},
			expErr: true,
		},
		{
			name:   "zero size",
			cfg:    &Config{Rand: bytes.NewReader(nil)},
			expErr: true,
		},
		{
			name: "too large",
			cfg: &Config{
				Rand: bytes.NewReader(nil),
				Size: MaxSize + 1,
			},
			expErr: true,
		},
		{
			name: "short ids",
			cfg:  &Config{Rand: bytes.NewReader(nil), Size: 8},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gen, err := NewGenerator(tc.cfg)
			if tc.expErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				require.Nil(t, gen)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, gen)
		})
	}
}

// TestGenerate checks that generated session ids are read from the configured
// source.
func TestGenerate(t *testing.T) {
	t.Parallel()

	src := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	gen, err := NewGenerator(&Config{Rand: src, Size: 4})
	require.NoError(t, err)

	first, err := gen.Generate()
	require.NoError(t, err)
	require.Equal(t, "01020304", first.String())

	second, err := gen.Generate()
	require.NoError(t, err)
	require.Equal(t, "05060708", second.String())

	// The source is exhausted now.
	_, err = gen.Generate()
	require.Error(t, err)
}

// TestGeneratorConfigCopy asserts that changing the config after the generator
// was created has no effect on the generated session ids.
func TestGeneratorConfigCopy(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Rand: bytes.NewReader(bytes.Repeat([]byte{0x42}, 128)),
		Size: 4,
	}
	gen, err := NewGenerator(cfg)
	require.NoError(t, err)

	cfg.Size = MaxSize + 10
	sid, err := gen.Generate()
	require.NoError(t, err)
	require.Equal(t, 4, sid.Len())
	require.NoError(t, sid.Validate())

	cfg.Size = -1
	cfg.Rand = nil
	sid, err = gen.Generate()
	require.NoError(t, err)
	require.Equal(t, 4, sid.Len())
}

// TestGeneratorZeroValue asserts that a Generator not built by NewGenerator
// returns an error instead of panicking.
func TestGeneratorZeroValue(t *testing.T) {
	t.Parallel()

	var gen Generator
	sid, err := gen.Generate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.True(t, sid.IsEmpty())
}

// TestGenerateFailure asserts that random source failures are surfaced.
func TestGenerateFailure(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("entropy pool unavailable")
	gen, err := NewGenerator(&Config{
		Rand: iotest.ErrReader(errBroken),
		Size: RandomSize,
	})
	require.NoError(t, err)

	sid, err := gen.Generate()
	require.ErrorIs(t, err, errBroken)
	require.True(t, sid.IsEmpty())
}

// TestGenerateConcurrent generates session ids from many goroutines with the
// default generator and checks they are all distinct.
func TestGenerateConcurrent(t *testing.T) {
	t.Parallel()

	const numWorkers = 8
	const perWorker = 64

	results := make(chan ID, numWorkers*perWorker)
	errs := make(chan error, numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			for j := 0; j < perWorker; j++ {
				sid, err := defaultGenerator.Generate()
				if err != nil {
					errs <- err
					return
				}
				results <- sid
			}
			errs <- nil
		}()
	}

	for i := 0; i < numWorkers; i++ {
		require.NoError(t, <-errs)
	}
	close(results)

	seen := make(map[ID]struct{})
	for sid := range results {
		seen[sid] = struct{}{}
	}
	require.Len(t, seen, numWorkers*perWorker)
}
