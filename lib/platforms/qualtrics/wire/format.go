package wire

import "strings"

// Format is the closed set of wire formats the API is known to respond
// with. Anything the classifier cannot place here is an explicit failure,
// never a silent default.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatXML
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatXML:
		return "XML"
	case FormatCSV:
		return "CSV"
	}
	return "unknown"
}

// the vendor serves spreadsheet exports under a proprietary excel mime type
const spreadsheetMimeType = "application/vnd.msexcel"

// ClassifyContentType maps a raw content-type header value onto a Format.
// Charset suffixes and casing are ignored.
func ClassifyContentType(value string) Format {
	media := strings.ToLower(strings.TrimSpace(value))
	if i := strings.Index(media, ";"); i >= 0 {
		media = strings.TrimSpace(media[:i])
	}

	switch media {
	case "application/json":
		return FormatJSON
	case "text/xml":
		return FormatXML
	case spreadsheetMimeType:
		return FormatCSV
	}
	return FormatUnknown
}
