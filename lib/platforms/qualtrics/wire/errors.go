package wire

import "fmt"

// UnknownFormatError is returned when the response content type is not one
// of the formats the API is known to speak. This includes text/html, which
// the vendor serves on some error pages and which is explicitly unsupported.
type UnknownFormatError struct {
	ContentType string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unrecognized response content type: %q", e.ContentType)
}

// MalformedXmlError carries the first diagnostic the XML decoder produced.
type MalformedXmlError struct {
	Line   int
	Detail string
}

func (e *MalformedXmlError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed xml response: line %d: %s", e.Line, e.Detail)
	}
	return fmt.Sprintf("malformed xml response: %s", e.Detail)
}
