package mapfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezynda3/tank-arena/internal/board"
)

func validMap() string {
	return strings.Join([]string{
		"Test Arena",
		"MaxSteps = 100",
		"NumShells = 5",
		"Rows = 3",
		"Cols = 3",
		"###",
		"#1#",
		"#2#",
	}, "\n")
}

func TestParseValidMap(t *testing.T) {
	m, collector, err := Parse(strings.NewReader(validMap()), "test")
	require.NoError(t, err)
	assert.True(t, collector.Empty())
	assert.Equal(t, "Test Arena", m.Name)
	assert.Equal(t, 100, m.MaxSteps)
	assert.Equal(t, 5, m.NumShells)
	require.Len(t, m.Spawns, 2)
	assert.Equal(t, board.Wall, m.Board.Cell(board.Point{X: 0, Y: 0}))
}

func TestParseRejectsZeroTanks(t *testing.T) {
	content := strings.Join([]string{
		"Empty Arena",
		"MaxSteps = 10",
		"NumShells = 1",
		"Rows = 2",
		"Cols = 2",
		"##",
		"##",
	}, "\n")
	_, _, err := Parse(strings.NewReader(content), "test")
	assert.Error(t, err)
}

func TestParseRejectsMalformedHeader(t *testing.T) {
	content := strings.Join([]string{
		"Bad Arena",
		"MaxSteps 100", // missing '='
		"NumShells = 5",
		"Rows = 1",
		"Cols = 1",
		"1",
	}, "\n")
	_, _, err := Parse(strings.NewReader(content), "test")
	assert.Error(t, err)
}

func TestParseWarnsOnShortRowsWithoutFailing(t *testing.T) {
	content := strings.Join([]string{
		"Short Rows",
		"MaxSteps = 10",
		"NumShells = 1",
		"Rows = 3",
		"Cols = 5",
		"#####",
		"#1",
		"#2###",
	}, "\n")
	m, collector, err := Parse(strings.NewReader(content), "test")
	require.NoError(t, err)
	assert.False(t, collector.Empty())
	assert.Len(t, m.Spawns, 2)
}
