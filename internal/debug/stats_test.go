package debug

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-viewer/internal/primitives"
)

func TestStatsLines(t *testing.T) {
	set := primitives.DefaultSet()
	set.Family = primitives.Torus
	m, err := primitives.Build(set)
	require.NoError(t, err)

	s := NewStats(set, m, 3)
	assert.Equal(t, []string{
		"torus ring=5.00 tube=2.00 seg=40x40 scale=1.00,1.00,1.00",
		"vertices: 1681  triangles: 3200",
		"mesh #3  textured",
	}, s.Lines())

	s.Wireframe = true
	s.Err = errors.New("bad radius")
	lines := s.Lines()
	require.Len(t, lines, errLine+1)
	assert.Equal(t, "mesh #3  wireframe", lines[2])
	assert.Equal(t, "error: bad radius", lines[errLine])
}
