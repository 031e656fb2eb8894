package pipeline

import (
	"bufio"
	"io"
	"os"

	"carbontrace/internal/logger"
	"carbontrace/internal/models"
	"carbontrace/internal/trace"
)

// Exporter writes reconstructed series as CSV: a header row `x,y`
// followed by one `<x>,<y>` line per point in capture order. The float
// formatting is the shortest exact representation; downstream
// consumers of exported files depend on this layout.
type Exporter struct {
	logger logger.Logger
}

func NewExporter(log logger.Logger) *Exporter {
	return &Exporter{logger: log}
}

func (e *Exporter) WriteSeries(w io.Writer, series []trace.DataPoint) error {
	buffered := bufio.NewWriter(w)

	if _, err := buffered.WriteString("x,y\n"); err != nil {
		return err
	}
	for _, p := range series {
		if _, err := buffered.WriteString(models.FormatValue(p.X) + "," + models.FormatValue(p.Y) + "\n"); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

func (e *Exporter) SaveToPath(path string, series []trace.DataPoint) error {
	file, err := os.Create(path)
	if err != nil {
		return &models.ExportError{Path: path, Err: err}
	}

	writeErr := e.WriteSeries(file, series)
	closeErr := file.Close()
	if writeErr != nil {
		return &models.ExportError{Path: path, Err: writeErr}
	}
	if closeErr != nil {
		return &models.ExportError{Path: path, Err: closeErr}
	}

	e.logger.Info("Exporter", "series exported", map[string]interface{}{
		"path":   path,
		"points": len(series),
	})
	return nil
}
