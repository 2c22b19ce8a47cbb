// Package export writes canvas snapshots to disk as PNG and PDF.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gocv.io/x/gocv"
)

// Exporter writes timestamped canvas snapshots into a directory.
// The drawing loop owns the exporter; it is not safe for concurrent use.
type Exporter struct {
	dir string
	seq int
}

// Result reports where a snapshot landed on disk.
type Result struct {
	PNGPath string
	PDFPath string
}

// New creates an exporter rooted at dir, creating the directory if needed.
func New(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	return &Exporter{dir: dir}, nil
}

// Dir returns the snapshot directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Snapshot writes the canvas buffer as a PNG and a single-page PDF
// wrapping the same image.
func (e *Exporter) Snapshot(mat gocv.Mat) (*Result, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("cannot snapshot an empty canvas")
	}

	e.seq++
	stamp := time.Now().Format("20060102-150405")
	base := fmt.Sprintf("rangoli-%s-%03d", stamp, e.seq)

	result := &Result{
		PNGPath: filepath.Join(e.dir, base+".png"),
		PDFPath: filepath.Join(e.dir, base+".pdf"),
	}

	if ok := gocv.IMWrite(result.PNGPath, mat); !ok {
		return nil, fmt.Errorf("failed to write PNG %s", result.PNGPath)
	}

	if err := e.writePDF(result.PDFPath, mat, stamp); err != nil {
		return nil, err
	}

	return result, nil
}

// writePDF renders the canvas image onto one landscape A4 page.
func (e *Exporter) writePDF(path string, mat gocv.Mat, stamp string) error {
	buf, err := gocv.IMEncode(".png", mat)
	if err != nil {
		return fmt.Errorf("failed to encode canvas for PDF: %w", err)
	}
	defer buf.Close()

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, "rangoli "+stamp, "", 1, "L", false, 0, "")

	pageW, pageH := pdf.GetPageSize()

	// Fit the canvas under the caption, preserving its aspect ratio
	maxW := pageW - 30
	maxH := pageH - 35
	w := maxW
	h := maxW * float64(mat.Rows()) / float64(mat.Cols())
	if h > maxH {
		h = maxH
		w = maxH * float64(mat.Cols()) / float64(mat.Rows())
	}
	x := (pageW - w) / 2
	y := 20.0

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, bytes.NewReader(buf.GetBytes()))
	pdf.ImageOptions("canvas", x, y, w, h, false, opts, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}

	return nil
}
