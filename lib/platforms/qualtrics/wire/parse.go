// Package wire normalizes the survey API's heterogeneous response payloads.
// The vendor answers the same endpoint with JSON, XML or a proprietary CSV
// dialect depending on the operation and the requested format; this package
// turns all of them into one canonical structured shape.
package wire

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"

	"qualtrics-client/lib/csvdialect"

	"github.com/antchfx/xmlquery"
)

// Response is the canonical parse result: the original headers plus the
// body decoded into plain nested data (map, slice or scalar).
type Response struct {
	Headers http.Header
	Body    any
}

// Parse dispatches on the content-type header and decodes the body
// accordingly. An unrecognized content type or a malformed XML body is an
// explicit failure; a payload is never coerced into an empty default.
func Parse(headers http.Header, body []byte) (Response, error) {
	contentType := headers.Get("Content-Type")

	switch ClassifyContentType(contentType) {
	case FormatJSON:
		var decoded any
		err := json.Unmarshal(body, &decoded)
		if err != nil {
			return Response{}, fmt.Errorf("decode json response: %w", err)
		}
		return Response{Headers: headers, Body: decoded}, nil

	case FormatXML:
		doc, err := xmlquery.Parse(bytes.NewReader(body))
		if err != nil {
			var syntax *xml.SyntaxError
			if errors.As(err, &syntax) {
				return Response{}, &MalformedXmlError{
					Line:   syntax.Line,
					Detail: syntax.Msg,
				}
			}
			return Response{}, &MalformedXmlError{Detail: err.Error()}
		}
		return Response{Headers: headers, Body: ToPlain(doc)}, nil

	case FormatCSV:
		return Response{
			Headers: headers,
			Body:    csvdialect.Parse(string(body)),
		}, nil
	}

	return Response{}, &UnknownFormatError{ContentType: contentType}
}
