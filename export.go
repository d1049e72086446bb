package sketch

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// EncodePNG writes the current surface pixels as a lossless PNG to w.
// Pure read; no history interaction.
func (b *Board) EncodePNG(w io.Writer) error {
	return b.surface.EncodePNG(w)
}

// SavePNG writes the current surface pixels to a PNG file.
func (b *Board) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return b.EncodePNG(f)
}

// pdfMargin is the page margin in millimeters for PDF export.
const pdfMargin = 10.0

// EncodePDF writes a single-page PDF embedding the current surface
// raster, scaled to fit an A4 landscape page while preserving aspect
// ratio.
func (b *Board) EncodePDF(w io.Writer) error {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode pdf: %w", err)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("surface", opts, &buf)

	pageW, pageH := pdf.GetPageSize()
	maxW := pageW - 2*pdfMargin
	maxH := pageH - 2*pdfMargin

	imgW := maxW
	imgH := maxW * float64(b.surface.Height()) / float64(b.surface.Width())
	if imgH > maxH {
		imgH = maxH
		imgW = maxH * float64(b.surface.Width()) / float64(b.surface.Height())
	}

	pdf.ImageOptions("surface", pdfMargin, pdfMargin, imgW, imgH, false, opts, 0, "")
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("encode pdf: %w", err)
	}
	return nil
}

// SavePDF writes the current surface to a single-page PDF file.
func (b *Board) SavePDF(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return b.EncodePDF(f)
}
