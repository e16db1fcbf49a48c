// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdftext turns a PDF lab report into plain text the extraction
// strategies can scan. Column gaps in the PDF layout are reproduced as
// space runs so tabular and positional extraction keep working.
package pdftext

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Document is the extracted text content of a PDF report.
type Document struct {
	Filename  string
	Text      string
	PageCount int
	WordCount int
	CharCount int
	LineCount int
}

// maxPages bounds processing time on very large documents.
const maxPages = 50

// Extract validates filePath as a PDF and extracts its text page by page.
func Extract(filePath string) (*Document, error) {
	doc := &Document{
		Filename: filepath.Base(filePath),
	}

	// Validate structure first; a corrupt file fails here with a clear
	// error instead of a parse panic later.
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(filePath, conf); err != nil {
		return doc, fmt.Errorf("not a valid PDF: %w", err)
	}
	pageCount, err := api.PageCountFile(filePath)
	if err != nil {
		return doc, fmt.Errorf("error counting PDF pages: %w", err)
	}
	doc.PageCount = pageCount
	if doc.PageCount > maxPages {
		doc.PageCount = maxPages
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return doc, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	type pageResult struct {
		pageNum int
		text    string
		err     error
	}
	resultChan := make(chan pageResult, doc.PageCount)

	for i := 1; i <= doc.PageCount; i++ {
		go func(pageNum int) {
			p := r.Page(pageNum)
			if p.V.IsNull() {
				resultChan <- pageResult{pageNum: pageNum, err: fmt.Errorf("null page")}
				return
			}
			text, err := extractPageText(p)
			resultChan <- pageResult{pageNum: pageNum, text: text, err: err}
		}(i)
	}

	pageTexts := make(map[int]string)
	for i := 0; i < doc.PageCount; i++ {
		result := <-resultChan
		if result.err != nil {
			continue
		}
		pageTexts[result.pageNum] = result.text
	}

	var buf bytes.Buffer
	for i := 1; i <= doc.PageCount; i++ {
		if text, exists := pageTexts[i]; exists {
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(text)
		}
	}

	doc.Text = cleanText(buf.String())
	doc.WordCount = len(strings.Fields(doc.Text))
	doc.CharCount = len(doc.Text)
	doc.LineCount = strings.Count(doc.Text, "\n") + 1

	return doc, nil
}

// extractPageText extracts one page using row-based positioning, falling
// back to plain extraction when row data is unavailable.
func extractPageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}
	// Read top to bottom.
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) < averageY(sortedRows[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sortedRows {
		rowText := reconstructRow(row.Content)
		if strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func averageY(textElements []pdf.Text) float64 {
	if len(textElements) == 0 {
		return 0
	}
	var totalY float64
	for _, element := range textElements {
		totalY += element.Y
	}
	return totalY / float64(len(textElements))
}

// reconstructRow joins the row's text elements left to right. A small gap
// becomes one space; a column-sized gap becomes a proportional space run
// so downstream column detection still sees the table layout.
func reconstructRow(textElements []pdf.Text) string {
	if len(textElements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(textElements))
	copy(sorted, textElements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, element := range sorted {
		buf.WriteString(element.S)
		if i == len(sorted)-1 {
			continue
		}

		gap := sorted[i+1].X - (element.X + element.W)
		fontSize := element.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}

		switch {
		case gap > fontSize*1.5:
			// Column gap: pad with spaces proportional to the distance,
			// clamped so pathological layouts stay readable.
			n := int(gap / (fontSize * 0.5))
			if n < 3 {
				n = 3
			}
			if n > 20 {
				n = 20
			}
			buf.WriteString(strings.Repeat(" ", n))
		case gap > fontSize*0.2:
			buf.WriteString(" ")
		}
	}
	return buf.String()
}

// cleanText trims line edges and drops blank lines while keeping the
// space runs inside lines intact.
func cleanText(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimRight(strings.ReplaceAll(line, "\t", " "), " ")
		if strings.TrimSpace(line) != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
