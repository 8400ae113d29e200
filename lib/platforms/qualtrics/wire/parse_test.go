package wire

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func jsonHeaders() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return h
}

func TestParseJsonEnvelope(t *testing.T) {
	body := []byte(`{"Meta":{"Status":"Success"},"Result":{"x":1}}`)
	res, err := Parse(jsonHeaders(), body)
	require.NoError(t, err)

	env, ok := ExtractEnvelope(res.Body)
	require.True(t, ok)
	require.Equal(t, StatusSuccess, env.Status)
	require.Equal(t, map[string]any{"x": float64(1)}, env.Result)
}

func TestParseJsonVendorFailure(t *testing.T) {
	body := []byte(`{"Meta":{"Status":"Fail","ErrorCode":1005,"ErrorMessage":"Bad thing"}}`)
	res, err := Parse(jsonHeaders(), body)
	require.NoError(t, err)

	env, ok := ExtractEnvelope(res.Body)
	require.True(t, ok)
	require.Equal(t, "Fail", env.Status)
	require.Equal(t, "1005", env.ErrorCode)
	require.Equal(t, "Bad thing", env.ErrorMessage)
}

func TestParseBarePayload(t *testing.T) {
	body := []byte(`{"Surveys":[]}`)
	res, err := Parse(jsonHeaders(), body)
	require.NoError(t, err)

	_, ok := ExtractEnvelope(res.Body)
	require.False(t, ok)
}

func TestParseXml(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "text/xml; charset=utf-8")

	body := []byte(`<Response><Meta><Status>Success</Status></Meta><Result><Name>Customer Pulse</Name></Result></Response>`)
	res, err := Parse(h, body)
	require.NoError(t, err)

	env, ok := ExtractEnvelope(res.Body)
	require.True(t, ok)
	require.Equal(t, StatusSuccess, env.Status)
	require.Equal(t, map[string]any{"Name": "Customer Pulse"}, env.Result)
}

func TestParseMalformedXml(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "text/xml")

	_, err := Parse(h, []byte("<Response><Meta></Response>"))
	var malformed *MalformedXmlError
	require.ErrorAs(t, err, &malformed)
	require.NotEmpty(t, malformed.Detail)
}

func TestParseCsv(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "application/vnd.msexcel")

	res, err := Parse(h, []byte("ResponseID,Q1\nR_1,\"yes, very\""))
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"ResponseID", "Q1"},
		{"R_1", "yes, very"},
	}, res.Body)
}

func TestParseUnknownContentType(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "text/calendar")

	_, err := Parse(h, []byte("BEGIN:VCALENDAR"))
	var unknown *UnknownFormatError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "text/calendar", unknown.ContentType)
}

func TestParseHtmlIsUnsupported(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "text/html; charset=utf-8")

	_, err := Parse(h, []byte("<html><body>error</body></html>"))
	var unknown *UnknownFormatError
	require.ErrorAs(t, err, &unknown)
}

func TestClassifyContentType(t *testing.T) {
	require.Equal(t, FormatJSON, ClassifyContentType("application/json"))
	require.Equal(t, FormatXML, ClassifyContentType("Text/XML; charset=UTF-8"))
	require.Equal(t, FormatCSV, ClassifyContentType("application/vnd.msexcel"))
	require.Equal(t, FormatUnknown, ClassifyContentType("text/html"))
	require.Equal(t, FormatUnknown, ClassifyContentType(""))
}
