// pkg/fingerprint/fingerprint_test.go
package fingerprint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileDeterministic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")

	content := []byte(`{"a":"1.0.0"}`)
	require.NoError(t, os.WriteFile(a, content, 0644))
	require.NoError(t, os.WriteFile(b, content, 0644))

	da, err := File(a)
	require.NoError(t, err)
	db, err := File(b)
	require.NoError(t, err)

	require.Equal(t, da, db, "byte-identical files must share a digest")
}

func TestFileSingleByteDifference(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")

	require.NoError(t, os.WriteFile(a, []byte(`{"a":"1.0.0"}`), 0644))
	require.NoError(t, os.WriteFile(b, []byte(`{"a":"1.0.0"} `), 0644))

	da, err := File(a)
	require.NoError(t, err)
	db, err := File(b)
	require.NoError(t, err)

	require.NotEqual(t, da, db, "any byte difference, including whitespace, must change the digest")
}

func TestFileMissing(t *testing.T) {
	t.Parallel()

	_, err := File(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	require.Contains(t, readErr.Path, "nope.json")
}
