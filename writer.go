package isotile

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
)

const (
	// GridFilename is the name of the debug grid image
	GridFilename = "grid.png"
	// HTMLFilename is the name of the HTML layout page
	HTMLFilename = "layout.html"
	// YAMLFilename is the name of the layout manifest
	YAMLFilename = "layout.yaml"

	maxColors = 256
)

// Writer saves tiles and their layout to a directory.
type Writer struct {
	dir    string
	colors int
	logger *log.Logger
}

// NewWriter returns a Writer for dir. If colors is greater than zero each
// tile is reduced to a palette of at most that many colors before it is
// saved.
func NewWriter(dir string, colors int, logger *log.Logger) (*Writer, error) {
	if colors > maxColors {
		return nil, fmt.Errorf("cannot reduce to more than %d colors", maxColors)
	}
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Writer{
		dir:    dir,
		colors: colors,
		logger: logger,
	}, nil
}

func (w *Writer) writeFile(name string, b []byte) error {
	if err := ioutil.WriteFile(filepath.Join(w.dir, name), b, 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", name, err)
	}
	w.logger.Printf("Wrote %s\n", name)
	return nil
}

// Encode returns m as a PNG, reduced to a palette if the Writer was
// configured to do so.
func (w *Writer) Encode(m image.Image) ([]byte, error) {
	if w.colors > 0 {
		b := m.Bounds()
		q := quantize.MedianCutQuantizer{}
		pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, w.colors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
		m = pm
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes every tile, the debug grid image, the HTML page and the YAML
// manifest. The directory is created if necessary.
func (w *Writer) Save(tiles []Tile, l *Layout) error {
	if len(tiles) != len(l.Placements) {
		return fmt.Errorf("layout has %d tiles, expected %d", len(l.Placements), len(tiles))
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	for i, t := range tiles {
		b, err := w.Encode(t.Image)
		if err != nil {
			return err
		}
		if err := w.writeFile(l.Placements[i].Filename, b); err != nil {
			return err
		}
	}

	if err := w.SaveGrid(l.Grid); err != nil {
		return err
	}

	html := new(bytes.Buffer)
	if err := l.WriteHTML(html, filepath.Base(w.dir), GridFilename); err != nil {
		return err
	}
	if err := w.writeFile(HTMLFilename, html.Bytes()); err != nil {
		return err
	}

	manifest := new(bytes.Buffer)
	if err := l.WriteYAML(manifest, GridFilename); err != nil {
		return err
	}
	return w.writeFile(YAMLFilename, manifest.Bytes())
}

// SaveGrid writes just the debug grid image. It is never quantized.
func (w *Writer) SaveGrid(grid image.Image) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, grid); err != nil {
		return err
	}
	return w.writeFile(GridFilename, buf.Bytes())
}
