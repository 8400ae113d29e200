package wire

import "strconv"

// StatusSuccess is the envelope status the vendor reports on success.
const StatusSuccess = "Success"

// Envelope is the vendor's {Meta, Result} wrapper around most responses.
// A handful of operations return their payload bare, without it.
type Envelope struct {
	Status       string
	ErrorCode    string
	ErrorMessage string
	Result       any
}

// ExtractEnvelope detects the envelope in a decoded body. It accepts both
// the JSON shape and the converted-XML shape, which are identical once
// normalized. The second return is false when the body carries no envelope.
func ExtractEnvelope(body any) (Envelope, bool) {
	root, ok := body.(map[string]any)
	if !ok {
		return Envelope{}, false
	}
	meta, ok := root["Meta"].(map[string]any)
	if !ok {
		return Envelope{}, false
	}
	status := scalarString(meta["Status"])
	if status == "" {
		return Envelope{}, false
	}

	return Envelope{
		Status:       status,
		ErrorCode:    scalarString(meta["ErrorCode"]),
		ErrorMessage: scalarString(meta["ErrorMessage"]),
		Result:       root["Result"],
	}, true
}

// scalarString renders a decoded scalar as a string. The vendor is not
// consistent about whether error codes arrive as numbers or strings.
func scalarString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	}
	return ""
}
