// Package figio writes gonum plots to disk.
package figio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultFormats are written when a path has no extension.
var DefaultFormats = []string{".png", ".svg", ".pdf"}

// DefaultPath returns plots/<date>/<time>/<name>, the place figures go
// when the caller does not name a file.
func DefaultPath(name string, now time.Time) string {
	return filepath.Join("plots", now.Format("2006-Jan-02"), now.Format("15-04-05"), name)
}

// Save writes p to path, creating parent directories. The format comes
// from the extension; a path without one is written once per
// DefaultFormats entry.
func Save(
	p *plot.Plot,
	width, height vg.Length,
	path string,
) (
	[]string, error,
) {

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	paths := outputs(path)
	for _, out := range paths {
		if err := p.Save(width, height, out); err != nil {
			return nil, fmt.Errorf("figio: save %s: %w", out, err)
		}
	}
	return paths, nil
}

// SaveTiles lays plots out in a grid (rows[i][j] is row i, column j),
// puts title above the grid and writes the result to path. Nil entries
// and the missing tail of a short row leave their tile empty.
func SaveTiles(
	rows [][]*plot.Plot,
	title string,
	width, height vg.Length,
	path string,
) (
	[]string, error,
) {

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("figio: no plots to tile")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	paths := outputs(path)
	for _, out := range paths {
		if err := saveTiles(rows, title, width, height, out); err != nil {
			return nil, fmt.Errorf("figio: save %s: %w", out, err)
		}
	}
	return paths, nil
}

func saveTiles(rows [][]*plot.Plot, title string, width, height vg.Length, path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	dc := draw.New(c)

	pad := vg.Millimeter * 4
	top := pad
	if title != "" {
		// Borrow the default title style so the font is resolved.
		sty := plot.New().Title.TextStyle
		sty.Font.Size = vg.Points(16)
		sty.XAlign = text.XCenter
		sty.YAlign = text.YTop
		dc.FillText(sty, vg.Point{X: width / 2, Y: height - pad}, title)
		top += sty.Height(title) + pad
	}

	tiles := draw.Tiles{
		Rows:      len(rows),
		Cols:      len(rows[0]),
		PadTop:    top,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
		PadX:      vg.Millimeter * 12,
		PadY:      vg.Millimeter * 10,
	}
	grid := make([][]*plot.Plot, len(rows))
	for i := range rows {
		grid[i] = make([]*plot.Plot, len(rows[0]))
		for j := range grid[i] {
			if j < len(rows[i]) && rows[i][j] != nil {
				grid[i][j] = rows[i][j]
				continue
			}
			blank := plot.New()
			blank.HideAxes()
			grid[i][j] = blank
		}
	}

	canvases := plot.Align(grid, tiles, dc)
	for i := range grid {
		for j, p := range grid[i] {
			p.Draw(canvases[i][j])
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func outputs(path string) []string {
	if filepath.Ext(path) != "" {
		return []string{path}
	}
	var paths []string
	for _, ext := range DefaultFormats {
		paths = append(paths, path+ext)
	}
	return paths
}
