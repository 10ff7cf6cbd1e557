// Package docsource validates raw document bytes and detects their kind
// before the pipeline touches them.
package docsource

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/entity"
)

var (
	pdfMagic = []byte("%PDF-")
	utf8BOM  = []byte{0xef, 0xbb, 0xbf}
)

// Normalize validates raw bytes into a canonical RawDocument with a
// detected source kind. A UTF-8 BOM is stripped from text inputs; PDF
// bytes pass through untouched so offsets stay valid.
func Normalize(data []byte, fileName string) (*entity.RawDocument, error) {
	if len(data) == 0 {
		return nil, common.NewAppError("EMPTY_DOCUMENT", "document has no bytes", common.ErrInvalidInput)
	}

	if bytes.HasPrefix(data, pdfMagic) {
		return &entity.RawDocument{Data: data, Kind: constants.SourcePDF, FileName: fileName}, nil
	}

	mt := mimetype.Detect(data)
	switch {
	case mt.Is("application/pdf"):
		return &entity.RawDocument{Data: data, Kind: constants.SourcePDF, FileName: fileName}, nil
	case mt.Is("message/rfc822"):
		return &entity.RawDocument{Data: data, Kind: constants.SourceEmail, FileName: fileName}, nil
	}

	trimmed := bytes.TrimPrefix(data, utf8BOM)
	if looksTextual(trimmed) {
		return &entity.RawDocument{Data: trimmed, Kind: constants.SourceText, FileName: fileName}, nil
	}

	return nil, common.NewAppError("UNKNOWN_FORMAT",
		"bytes are neither PDF, email, nor text ("+mt.String()+")", common.ErrInvalidInput)
}

// looksTextual accepts valid UTF-8 with a low control-byte ratio.
func looksTextual(data []byte) bool {
	if !utf8.Valid(data) {
		return false
	}
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	control := 0
	for _, b := range sample {
		if b < 0x09 || (b > 0x0d && b < 0x20) {
			control++
		}
	}
	return control*20 < len(sample) || control == 0
}

// TextOf decodes a plain-text document's bytes.
func TextOf(doc *entity.RawDocument) string {
	return strings.TrimSpace(string(doc.Data))
}
