// Package pdftext turns raw PDF bytes into plain text, one entry per page.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ErrUnreadablePDF indicates the input is not a readable PDF: corrupt,
// truncated, or encrypted without a usable password.
var ErrUnreadablePDF = errors.New("unreadable pdf")

// Page is the extracted text of a single PDF page. Text is empty for
// image-only pages (no OCR).
type Page struct {
	Number int
	Text   string
}

// Document is the full extraction result for one PDF.
type Document struct {
	Pages     []Page
	Text      string // newline-joined page texts
	HasImages bool   // the PDF carries image streams (possibly scanned)
}

// Extract validates the PDF and returns its text page by page. Pages with
// no extractable text contribute empty entries rather than errors; a PDF
// that cannot be validated or opened fails with ErrUnreadablePDF.
func Extract(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnreadablePDF)
	}

	// Structural validation first, so malformed or encrypted files are
	// rejected before any text extraction is attempted.
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	doc := &Document{HasImages: detectImageStreams(ctx)}

	pages, err := extractPages(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	doc.Pages = pages

	var buf strings.Builder
	for _, p := range doc.Pages {
		if p.Text == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(p.Text)
	}
	doc.Text = buf.String()

	return doc, nil
}

// extractPages pulls plain text per page. ledongthuc/pdf panics on some
// malformed inputs, so the whole pass runs under a recover.
func extractPages(data []byte) (pages []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, Page{Number: i})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only or undecodable page: empty text, not an error.
			pages = append(pages, Page{Number: i})
			continue
		}
		pages = append(pages, Page{Number: i, Text: strings.TrimSpace(text)})
	}

	return pages, nil
}

// detectImageStreams reports whether the PDF contains image XObjects.
func detectImageStreams(ctx *model.Context) bool {
	if ctx.Optimize != nil {
		for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
			if len(pdfcpu.ImageObjNrs(ctx, pageNr)) > 0 {
				return true
			}
		}
	}
	// Fallback: scan the xref table for image subtype stream dicts.
	for _, entry := range ctx.Table {
		if entry == nil || entry.Free || entry.Compressed {
			continue
		}
		sd, ok := entry.Object.(types.StreamDict)
		if !ok {
			continue
		}
		if subtype, found := sd.Find("Subtype"); found {
			if name, isName := subtype.(types.Name); isName && name == "Image" {
				return true
			}
		}
	}
	return false
}
