// Package extract turns uploaded documents into plain text.
package extract

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

var ErrExtract = errors.New("extract text failed")

var pdfMagic = []byte("%PDF")

type IExtractor interface {
	Extract(content []byte) (string, error)
}

// Supported reports whether the upload looks like a PDF, either by its file
// name or its leading bytes.
func Supported(filename string, content []byte) bool {
	if strings.ToLower(filepath.Ext(filename)) == ".pdf" {
		return true
	}
	return bytes.HasPrefix(content, pdfMagic)
}
