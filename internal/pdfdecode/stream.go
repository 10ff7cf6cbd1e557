package pdfdecode

import (
	"bytes"
	"compress/zlib"
	"io"
	"regexp"
	"strings"
	"unicode"
)

var (
	reStreamBlock = regexp.MustCompile(`(?s)stream\r?\n(.*?)endstream`)
	rePDFString   = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)
)

// scanContentStreams recovers text from raw PDF bytes without the object
// model: it finds parenthesized string literals attached to the text-show
// operators (Tj, TJ arrays, ') and applies PDF string-escape decoding.
// Positions are lost; deflated streams are inflated first where possible.
func scanContentStreams(data []byte) string {
	var sb strings.Builder
	scanOperators(data, &sb)
	for _, m := range reStreamBlock.FindAllSubmatch(data, -1) {
		if inflated, ok := inflate(m[1]); ok {
			scanOperators(inflated, &sb)
		}
	}
	return strings.TrimSpace(collapseSpaces(sb.String()))
}

func scanOperators(data []byte, sb *strings.Builder) {
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range rePDFString.FindAllSubmatch(line, -1) {
				if text := decodePDFString(m[1]); text != "" {
					sb.WriteString(text)
					sb.WriteByte(' ')
				}
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range rePDFString.FindAllSubmatch(line, -1) {
				if text := decodePDFString(m[1]); text != "" {
					sb.WriteByte('\n')
					sb.WriteString(text)
				}
			}
		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}
}

// decodePDFString handles PDF literal-string escapes: backslash sequences
// and octal character codes.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

func inflate(data []byte) ([]byte, bool) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	defer r.Close()
	out, err := io.ReadAll(io.LimitReader(r, 8<<20))
	if err != nil || len(out) == 0 {
		return nil, false
	}
	return out, true
}

// scrapePrintable is the last-resort tier: any run of at least 6 printable
// Latin-1 bytes counts as a candidate word.
func scrapePrintable(data []byte) string {
	const minRun = 6
	var sb strings.Builder
	start := -1
	flush := func(end int) {
		if start >= 0 && end-start >= minRun {
			// Latin-1 bytes map to the same Unicode code points.
			for _, b := range data[start:end] {
				sb.WriteRune(rune(b))
			}
			sb.WriteByte(' ')
		}
		start = -1
	}
	for i, b := range data {
		printable := (b >= 0x20 && b <= 0x7e) || b >= 0xa0
		if printable {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(data))
	return strings.TrimSpace(collapseSpaces(sb.String()))
}

func collapseSpaces(s string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range s {
		if r == '\n' {
			sb.WriteRune(r)
			prevSpace = true
			continue
		}
		if unicode.IsSpace(r) {
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		sb.WriteRune(r)
		prevSpace = false
	}
	return sb.String()
}
