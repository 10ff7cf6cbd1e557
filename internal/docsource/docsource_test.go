package docsource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaraszi/billscan/constants"
	"github.com/akaraszi/billscan/internal/common"
)

func TestNormalizePDF(t *testing.T) {
	doc, err := Normalize([]byte("%PDF-1.4\nfake body"), "invoice.pdf")
	require.NoError(t, err)
	assert.Equal(t, constants.SourcePDF, doc.Kind)
	assert.Equal(t, "invoice.pdf", doc.FileName)
}

func TestNormalizePlainText(t *testing.T) {
	doc, err := Normalize([]byte("Invoice Number: INV-1\nTotal Due: 12.50 USD\n"), "note.txt")
	require.NoError(t, err)
	assert.Equal(t, constants.SourceText, doc.Kind)
}

func TestNormalizeStripsBOM(t *testing.T) {
	data := append([]byte{0xef, 0xbb, 0xbf}, []byte("Fizetendo osszeg: 4 500 Ft")...)
	doc, err := Normalize(data, "szamla.txt")
	require.NoError(t, err)
	assert.Equal(t, constants.SourceText, doc.Kind)
	assert.Equal(t, "Fizetendo osszeg: 4 500 Ft", TextOf(doc))
}

func TestNormalizeEmail(t *testing.T) {
	msg := strings.Join([]string{
		"Received: from mail.example.com by mx.example.net",
		"Message-ID: <abc-123@example.com>",
		"From: billing@example.com",
		"To: user@example.net",
		"Subject: Your monthly bill",
		"Content-Type: text/plain",
		"",
		"Amount Due: 42.00 USD",
		"",
	}, "\r\n")
	doc, err := Normalize([]byte(msg), "bill.eml")
	require.NoError(t, err)
	assert.Equal(t, constants.SourceEmail, doc.Kind)
}

func TestNormalizeRejectsEmpty(t *testing.T) {
	_, err := Normalize(nil, "empty.bin")
	require.Error(t, err)
	assert.Equal(t, "InvalidInput", common.FailureKind(err))
}

func TestNormalizeRejectsBinaryGarbage(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0xff, 0xfe, 0x00, 0x03, 0x04, 0x00, 0x01}
	_, err := Normalize(data, "blob.bin")
	require.Error(t, err)
	assert.Equal(t, "InvalidInput", common.FailureKind(err))
}

func TestParseEmailPlainBody(t *testing.T) {
	msg := strings.Join([]string{
		"Message-ID: <id-77@example.com>",
		"From: billing@example.com",
		"Subject: Invoice attached",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"Your account ACCT9900 owes 120.00 EUR by 2024-03-01.",
		"",
	}, "\r\n")
	em, err := ParseEmail([]byte(msg))
	require.NoError(t, err)
	assert.Equal(t, "id-77@example.com", em.MessageID)
	assert.Equal(t, "Invoice attached", em.Subject)
	assert.Contains(t, em.Body, "ACCT9900")
	assert.Empty(t, em.PDFs)
}

func TestParseEmailHTMLFallback(t *testing.T) {
	msg := strings.Join([]string{
		"Message-ID: <id-78@example.com>",
		"From: billing@example.com",
		"Subject: Bill",
		"Content-Type: text/html; charset=utf-8",
		"",
		"<html><body><p>Total Due: <b>55.00</b> USD</p></body></html>",
		"",
	}, "\r\n")
	em, err := ParseEmail([]byte(msg))
	require.NoError(t, err)
	assert.Contains(t, em.Body, "Total Due:")
	assert.NotContains(t, em.Body, "<b>")
}

func TestParseEmailPDFAttachment(t *testing.T) {
	boundary := "xyz-boundary"
	msg := strings.Join([]string{
		"Message-ID: <id-79@example.com>",
		"From: billing@example.com",
		"Subject: Bill with attachment",
		"MIME-Version: 1.0",
		"Content-Type: multipart/mixed; boundary=" + boundary,
		"",
		"--" + boundary,
		"Content-Type: text/plain",
		"",
		"See attached.",
		"--" + boundary,
		"Content-Type: application/pdf; name=bill.pdf",
		"Content-Disposition: attachment; filename=bill.pdf",
		"Content-Transfer-Encoding: base64",
		"",
		"JVBERi0xLjQKZmFrZQ==",
		"--" + boundary + "--",
		"",
	}, "\r\n")
	em, err := ParseEmail([]byte(msg))
	require.NoError(t, err)
	require.Len(t, em.PDFs, 1)
	assert.Equal(t, "bill.pdf", em.PDFs[0].FileName)
	assert.True(t, strings.HasPrefix(string(em.PDFs[0].Data), "%PDF-"))
}
