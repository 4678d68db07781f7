package report

import (
	"io"

	"github.com/devinsights/benchcompare/internal/comparison"
	"github.com/devinsights/benchcompare/internal/config"
	"github.com/devinsights/benchcompare/internal/snapshot"
	"github.com/devinsights/benchcompare/internal/table"
	"github.com/sirupsen/logrus"
)

// Generator runs the load, compare and render pipeline for one summary file.
type Generator struct {
	log      logrus.FieldLogger
	loader   snapshot.Loader
	comparer *comparison.Comparer
	text     *TextRenderer
	format   Format
	out      io.Writer
}

// NewGenerator wires a generator writing to out in the given format.
func NewGenerator(log logrus.FieldLogger, cfg *config.Config, out io.Writer, f Format) *Generator {
	return &Generator{
		log:      log.WithField("component", "report.generator"),
		loader:   snapshot.NewLoader(log),
		comparer: comparison.NewComparer(log, cfg),
		text:     NewTextRenderer(log, table.NewRenderer(log)),
		format:   f,
		out:      out,
	}
}

// Generate loads the summary at path and writes its report. Load errors
// (snapshot.ErrNotFound, snapshot.ErrMalformed) are returned before
// anything is written.
func (g *Generator) Generate(path string) error {
	snap, err := g.loader.Load(path)
	if err != nil {
		return err
	}

	cmp := g.comparer.Compare(snap)

	g.log.WithFields(logrus.Fields{
		"path":   path,
		"format": g.format,
	}).Debug("rendering report")

	if g.format == FormatText {
		return g.text.Render(g.out, cmp)
	}

	return Export(g.out, cmp, g.format)
}
