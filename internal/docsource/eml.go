package docsource

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/jhillyerd/enmime"

	"github.com/akaraszi/billscan/internal/common"
)

// Attachment is a decoded email attachment candidate for extraction.
type Attachment struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Email is the extraction-relevant slice of a parsed MIME message.
type Email struct {
	MessageID string
	Subject   string
	Body      string
	PDFs      []Attachment
}

var reHTMLTag = regexp.MustCompile(`<[^>]*>`)

// ParseEmail parses an RFC 822 message: plain-text body (HTML stripped as a
// fallback) plus any PDF attachments, each a candidate document of its own.
func ParseEmail(data []byte) (*Email, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(data))
	if err != nil {
		return nil, common.NewAppError("EML_PARSE", "cannot parse MIME message", common.WrapError(err, "enmime"))
	}

	body := env.Text
	if strings.TrimSpace(body) == "" && env.HTML != "" {
		body = reHTMLTag.ReplaceAllString(env.HTML, " ")
	}

	out := &Email{
		MessageID: strings.Trim(env.GetHeader("Message-Id"), "<>"),
		Subject:   env.GetHeader("Subject"),
		Body:      strings.TrimSpace(body),
	}

	for _, att := range env.Attachments {
		if att.ContentType == "application/pdf" || bytes.HasPrefix(att.Content, pdfMagic) {
			out.PDFs = append(out.PDFs, Attachment{
				FileName:    att.FileName,
				ContentType: att.ContentType,
				Data:        att.Content,
			})
		}
	}
	return out, nil
}
