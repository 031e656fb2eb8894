package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbontrace/internal/logger"
	"carbontrace/internal/models"
	"carbontrace/internal/trace"
)

func TestWriteSeriesFormat(t *testing.T) {
	exporter := NewExporter(logger.NewNop())

	var buf bytes.Buffer
	err := exporter.WriteSeries(&buf, []trace.DataPoint{
		{X: 0.5, Y: 25},
		{X: 12.25, Y: -3},
		{X: 1e21, Y: 0.1},
	})
	require.NoError(t, err)

	assert.Equal(t, "x,y\n0.5,25\n12.25,-3\n1e+21,0.1\n", buf.String())
}

func TestWriteSeriesEmpty(t *testing.T) {
	exporter := NewExporter(logger.NewNop())

	var buf bytes.Buffer
	require.NoError(t, exporter.WriteSeries(&buf, nil))
	assert.Equal(t, "x,y\n", buf.String())
}

func TestSaveToPath(t *testing.T) {
	exporter := NewExporter(logger.NewNop())
	path := filepath.Join(t.TempDir(), "series.csv")

	err := exporter.SaveToPath(path, []trace.DataPoint{{X: 1, Y: 2}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x,y\n1,2\n", string(data))
}

func TestSaveToPathUnwritable(t *testing.T) {
	exporter := NewExporter(logger.NewNop())
	path := filepath.Join(t.TempDir(), "missing", "series.csv")

	err := exporter.SaveToPath(path, nil)
	var exportErr *models.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, path, exportErr.Path)
}
