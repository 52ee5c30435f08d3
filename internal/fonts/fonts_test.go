package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("font"), 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.TTF"))
	touch(t, filepath.Join(dir, "mono.otf"))
	touch(t, filepath.Join(dir, "readme.txt"))

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "mono.otf"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	touch(t, filepath.Join(dir, "Fira_Mono", "FiraMono-Medium.otf"))

	got, err := Find("inter", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), got)

	got, err = Find("Fira Mono.ttf", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Fira_Mono", "FiraMono-Medium.otf"), got)

	direct := filepath.Join(dir, "Inter", "Inter-Bold.ttf")
	got, err = Find(direct)
	require.NoError(t, err)
	assert.Equal(t, direct, got)

	_, err = Find("comic", dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = Find("", dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
