// Package csvdialect parses the quoted, delimiter-separated text blobs the
// survey API emits for its spreadsheet exports. The dialect is not RFC 4180:
// escaped quotes are written as two consecutive double quotes and quoted
// fields may contain delimiters and line breaks.
//
// Every field is percent-decoded after splitting, including unquoted ones
// that were never encoded: a valid %XX sequence in an unquoted field
// decodes (`%31` becomes `1`), while a malformed sequence like `%zz`
// passes through unchanged. A literal `+` is never touched.
package csvdialect

import (
	"net/url"
	"regexp"
	"strings"
)

type Options struct {
	Delimiter      string
	SkipEmptyLines bool
	TrimFields     bool
}

func DefaultOptions() Options {
	return Options{
		Delimiter:      ",",
		SkipEmptyLines: true,
		TrimFields:     true,
	}
}

// sentinel stands in for an escaped quote while quoted regions are
// being located. must never appear in real export data.
const sentinel = "\x00"

var quotedField = regexp.MustCompile(`"[^"]*"`)
var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// percentEncode is strict %XX percent-coding. url.QueryEscape alone would
// render a space as `+`, which url.PathUnescape (deliberately chosen so a
// literal `+` in unquoted fields survives decoding) would not reverse;
// url.PathEscape would leave delimiters like `,` unescaped.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Parse reads `text` with DefaultOptions.
func Parse(text string) [][]string {
	return ParseWith(text, DefaultOptions())
}

// ParseWith turns a delimited text blob into rows of fields. Row 0 is a
// header row by caller convention only; the parser does not distinguish it
// and does not enforce rectangularity.
func ParseWith(text string, opts Options) [][]string {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}

	// protect escaped quotes so the quoted-region scan below never
	// terminates a field early
	text = strings.ReplaceAll(text, `""`, sentinel)

	// percent-encode quoted field content so embedded delimiters and line
	// breaks survive the line/field splits, then drop the quotes
	text = quotedField.ReplaceAllStringFunc(text, func(match string) string {
		return percentEncode(match[1 : len(match)-1])
	})

	lines := lineBreak.Split(text, -1)

	var rows [][]string
	for _, line := range lines {
		if opts.SkipEmptyLines && strings.TrimSpace(line) == "" {
			continue
		}

		tokens := strings.Split(line, opts.Delimiter)
		fields := make([]string, 0, len(tokens))
		for _, token := range tokens {
			// raw tokens are trimmed before decoding so whitespace
			// embedded in a quoted field is preserved
			if opts.TrimFields {
				token = strings.TrimSpace(token)
			}
			decoded, err := url.PathUnescape(token)
			if err != nil {
				decoded = token
			}
			fields = append(fields, strings.ReplaceAll(decoded, sentinel, `"`))
		}
		rows = append(rows, fields)
	}
	return rows
}
