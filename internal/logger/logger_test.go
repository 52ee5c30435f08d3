package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesCaptureEntries(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, nil)

	l.Log("solid sphere")
	l.WithFields(logrus.Fields{"family": "torus", "vertices": 1681}).Info("mesh rebuilt")
	l.WithError(errors.New("radius must be positive")).Warn("rebuild failed")

	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "["))
	assert.True(t, strings.HasSuffix(lines[0], "] solid sphere"))
	assert.Contains(t, lines[1], "mesh rebuilt family=torus vertices=1681")
	assert.Contains(t, lines[2], "WARNING: rebuild failed error=\"radius must be positive\"")

	assert.Contains(t, buf.String(), "msg=\"mesh rebuilt\"")
	assert.Contains(t, buf.String(), "level=warning")
}

func TestLinesReturnsCopy(t *testing.T) {
	l := NewWithWriter(&bytes.Buffer{}, nil)
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "viewer.txt")
	l := New(path)
	l.Log("hello")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hello")
}

func TestCloseWithoutFile(t *testing.T) {
	l := NewWithWriter(&bytes.Buffer{}, nil)
	assert.NoError(t, l.Close())
}
