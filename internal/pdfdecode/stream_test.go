package pdfdecode

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanContentStreams_Operators(t *testing.T) {
	raw := []byte("BT\n(Account Number: ACCT12345) Tj\n[(Current) -250 (Charges:) -250 ($124.56)] TJ\nT*\n(Due Date: 06/01/2023) '\nET\n")
	got := scanContentStreams(raw)
	assert.Contains(t, got, "Account Number: ACCT12345")
	assert.Contains(t, got, "Current Charges: $124.56")
	assert.Contains(t, got, "Due Date: 06/01/2023")
}

func TestScanContentStreams_Deflated(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, _ = w.Write([]byte("(Fizetendo osszeg: 45 678 Ft) Tj\n"))
	_ = w.Close()

	doc := append([]byte("%PDF-1.4\n1 0 obj\n<< /Length 10 >>\nstream\n"), buf.Bytes()...)
	doc = append(doc, []byte("endstream\nendobj\n")...)

	got := scanContentStreams(doc)
	assert.Contains(t, got, "Fizetendo osszeg: 45 678 Ft")
}

func TestDecodePDFString_Escapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`par\(en\)s`, "par(en)s"},
		{`back\\slash`, `back\slash`},
		{`line\nfeed`, "line\nfeed"},
		{`octal\040space`, "octal space"},
		{`oct\101`, "octA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, decodePDFString([]byte(tt.in)), tt.in)
	}
}

func TestScrapePrintable(t *testing.T) {
	data := []byte("\x00\x01Szolgaltato Zrt.\x02\x03ab\x04Fizetendo\x05")
	got := scrapePrintable(data)
	assert.Contains(t, got, "Szolgaltato Zrt.")
	assert.Contains(t, got, "Fizetendo")
	// runs shorter than six bytes are dropped
	assert.NotContains(t, got, "ab")
}
