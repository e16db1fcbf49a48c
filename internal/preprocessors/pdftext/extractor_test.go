// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdftext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o600))

	_, err := Extract(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid PDF")
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestReconstructRowColumnGaps(t *testing.T) {
	row := []pdf.Text{
		{S: "Glucose", X: 10, W: 40, FontSize: 10},
		{S: "95", X: 150, W: 12, FontSize: 10},
		{S: "mg/dL", X: 166, W: 30, FontSize: 10},
	}

	out := reconstructRow(row)
	assert.Contains(t, out, "Glucose   ", "column gap becomes a space run")
	assert.Contains(t, out, "95 mg/dL", "word gap becomes a single space")
}

func TestReconstructRowSortsByX(t *testing.T) {
	row := []pdf.Text{
		{S: "95", X: 150, W: 12, FontSize: 10},
		{S: "Glucose", X: 10, W: 40, FontSize: 10},
	}
	out := reconstructRow(row)
	assert.Regexp(t, `^Glucose +95$`, out)
}

func TestCleanText(t *testing.T) {
	in := "Glucose      95   \n\n   \nSodium      140\t\n"
	out := cleanText(in)

	assert.Equal(t, "Glucose      95\nSodium      140", out)
}
