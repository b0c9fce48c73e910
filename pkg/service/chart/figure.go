// Package chart renders aggregated roster data with gonum/plot and writes
// raster images.
package chart

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BobTheSnob1/dominion-staff-timeline/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure dimensions. A DPI of d gives a d*15 x d*10 pixel image.
const (
	Width  = 15 * vg.Inch
	Height = 10 * vg.Inch
)

// Figure is anything that can draw itself onto a canvas; *plot.Plot satisfies it
type Figure interface {
	Draw(c draw.Canvas)
}

// Formats lists the supported output extensions
var Formats = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff"}

// OutputPath appends .png when path has no extension and rejects unsupported ones
func OutputPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", goerr.New("output path is empty", goerr.T(model.ErrTagInvalidInput))
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return path + ".png", nil
	}
	for _, f := range Formats {
		if ext == f {
			return path, nil
		}
	}
	return "", goerr.New("unsupported image format",
		goerr.V("path", path),
		goerr.V("supported", Formats),
		goerr.T(model.ErrTagInvalidInput))
}

// Save draws fig at the given DPI and writes it to path. It returns the path
// actually written.
func Save(fig Figure, path string, dpi int) (string, error) {
	if dpi <= 0 {
		return "", goerr.New("dpi must be positive", goerr.V("dpi", dpi), goerr.T(model.ErrTagInvalidInput))
	}
	out, err := OutputPath(path)
	if err != nil {
		return "", err
	}

	c := vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(dpi))
	fig.Draw(draw.New(c))

	var w io.WriterTo
	switch strings.ToLower(filepath.Ext(out)) {
	case ".jpg", ".jpeg":
		w = vgimg.JpegCanvas{Canvas: c}
	case ".tif", ".tiff":
		w = vgimg.TiffCanvas{Canvas: c}
	default:
		w = vgimg.PngCanvas{Canvas: c}
	}

	f, err := os.Create(out)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create image file", goerr.V("path", out))
	}
	if _, err := w.WriteTo(f); err != nil {
		_ = f.Close()
		return "", goerr.Wrap(err, "failed to encode image", goerr.V("path", out))
	}
	if err := f.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close image file", goerr.V("path", out))
	}
	return out, nil
}

func unix(t time.Time) float64 {
	return float64(t.Unix())
}
