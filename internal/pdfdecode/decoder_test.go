package pdfdecode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaraszi/billscan/internal/common"
	"github.com/akaraszi/billscan/internal/entity"
)

func TestDecode_RejectsNonPDF(t *testing.T) {
	d := NewDecoder(time.Second, time.Second, nil)
	_, err := d.Decode(context.Background(), []byte("plain text, not a pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDecode))
}

func TestDecode_StreamScanFallback(t *testing.T) {
	// Valid header, unparseable object model: the structured tier fails and
	// the raw operator scan recovers the literals.
	doc := []byte("%PDF-1.4\nBT\n(Account Number: ACCT12345) Tj\n(Total: $124.56) Tj\nET\n")

	d := NewDecoder(5*time.Second, time.Second, nil)
	res, err := d.Decode(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, entity.TierStream, res.Tier)
	require.Len(t, res.Pages, 1)
	assert.Contains(t, res.PlainText(), "ACCT12345")
	assert.Contains(t, res.PlainText(), "$124.56")
}

func TestDecode_ScrapeFallback(t *testing.T) {
	// No text-show operators at all: the printable byte-run tier kicks in.
	doc := append([]byte("%PDF-1.4\n\x00\x01\x02"), []byte("Acme Power Company\x00\x00")...)

	d := NewDecoder(5*time.Second, time.Second, nil)
	res, err := d.Decode(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, entity.TierScrape, res.Tier)
	assert.Contains(t, res.PlainText(), "Acme Power Company")
}

func TestDecode_NothingRecoverable(t *testing.T) {
	doc := []byte("%PDF-\x00\x01\x02\x03\x04")
	d := NewDecoder(5*time.Second, time.Second, nil)
	_, err := d.Decode(context.Background(), doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDecode))
}

func TestDecodePages_IsolatesPanickingPage(t *testing.T) {
	d := NewDecoder(5*time.Second, time.Second, nil)

	pages := d.decodePages(context.Background(), 3, func(i int) entity.Page {
		if i == 2 {
			panic("corrupt page stream")
		}
		return entity.Page{Number: i, Runs: []entity.PositionedTextRun{{Text: "page text"}}}
	})

	require.Len(t, pages, 3)
	assert.NotEmpty(t, pages[0].Runs)
	assert.NotEmpty(t, pages[2].Runs)
	assert.Equal(t, entity.Page{Number: 2}, pages[1])
}

func TestDecodePages_IsolatesHangingPage(t *testing.T) {
	d := NewDecoder(5*time.Second, 50*time.Millisecond, nil)

	release := make(chan struct{})
	defer close(release)

	pages := d.decodePages(context.Background(), 3, func(i int) entity.Page {
		if i == 2 {
			<-release
		}
		return entity.Page{Number: i, Runs: []entity.PositionedTextRun{{Text: "page text"}}}
	})

	require.Len(t, pages, 3)
	assert.NotEmpty(t, pages[0].Runs)
	assert.NotEmpty(t, pages[2].Runs)
	assert.Equal(t, entity.Page{Number: 2}, pages[1])
}

func TestDecode_Idempotent(t *testing.T) {
	doc := []byte("%PDF-1.4\nBT\n(Total: 42) Tj\nET\n")
	d := NewDecoder(5*time.Second, time.Second, nil)

	a, err := d.Decode(context.Background(), doc)
	require.NoError(t, err)
	b, err := d.Decode(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, a.PlainText(), b.PlainText())
	assert.Equal(t, a.Tier, b.Tier)
}
