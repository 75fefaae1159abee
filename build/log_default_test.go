//go:build !stdlog && !nolog

package build

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLogWriterDefault checks that the default writer reports the result of
// the underlying write.
func TestLogWriterDefault(t *testing.T) {
	t.Parallel()

	msg := []byte("log writer test line\n")
	n, err := (&LogWriter{}).Write(msg)
	require.NoError(t, err)
	require.Equal(t, len(msg), n)
}
