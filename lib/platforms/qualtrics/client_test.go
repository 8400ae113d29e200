package qualtrics

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"qualtrics-client/lib/platforms/qualtrics/wire"
	"qualtrics-client/lib/telemetry"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
)

const testEndpoint = "https://survey.test.example/WRAPI/ControlPanel/api.php"

func jsonResponse(status int, body string) *http.Response {
	res := httpmock.NewStringResponse(status, body)
	res.Header.Set("Content-Type", "application/json")
	return res
}

func bodyResponse(status int, contentType, body string) *http.Response {
	res := httpmock.NewStringResponse(status, body)
	res.Header.Set("Content-Type", contentType)
	return res
}

const userInfoSuccess = `{"Meta":{"Status":"Success"},"Result":{"UserName":"ops@example.com"}}`

// newTestClient builds a client against a mock transport. Requests are
// dispatched to `handlers` by their Request parameter; getUserInfo (the
// construction-time verification call) succeeds unless overridden.
func newTestClient(t *testing.T, handlers map[string]httpmock.Responder) *Client {
	t.Helper()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", testEndpoint,
		func(req *http.Request) (*http.Response, error) {
			operation := req.URL.Query().Get("Request")
			if handler, ok := handlers[operation]; ok {
				return handler(req)
			}
			if operation == "getUserInfo" {
				return jsonResponse(200, userInfoSuccess), nil
			}
			return httpmock.NewStringResponse(404, "no responder"), nil
		})

	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl:   testEndpoint,
		Username:  "ops@example.com",
		Token:     "tok_123",
		LibraryID: "GR_lib1",
		Transport: transport,
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:qualtrics")
	defer cleanup()

	var missing *MissingParameterError

	_, err := NewClient(context.Background(), ClientOptions{
		BaseUrl: testEndpoint,
		Token:   "tok_123",
	})
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "User", missing.Field)

	_, err = NewClient(context.Background(), ClientOptions{
		BaseUrl:  testEndpoint,
		Username: "ops@example.com",
	})
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "Token", missing.Field)
}

func TestNewClientRejectsBadToken(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", testEndpoint,
		func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"Meta":{"Status":"Fail","ErrorCode":"5","ErrorMessage":"Invalid token"}}`), nil
		})

	_, err := NewClient(context.Background(), ClientOptions{
		BaseUrl:   testEndpoint,
		Username:  "ops@example.com",
		Token:     "bogus",
		Transport: transport,
	})
	var vendor *VendorError
	require.ErrorAs(t, err, &vendor)
	require.Equal(t, "Invalid token", vendor.Message)
}

func TestGetSurveys(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getSurveys": func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()
			require.Equal(t, "ops@example.com", query.Get("User"))
			require.Equal(t, "tok_123", query.Get("Token"))
			require.Equal(t, "2.5", query.Get("Version"))
			require.Equal(t, "JSON", query.Get("Format"))

			return jsonResponse(200, `{
				"Meta": {"Status": "Success"},
				"Result": {"Surveys": [{"SurveyID": "SV_1", "SurveyName": "Pulse"}]}
			}`), nil
		},
	})

	surveys, err := client.GetSurveys(context.Background())
	require.NoError(t, err)
	require.Equal(t, []any{
		map[string]any{"SurveyID": "SV_1", "SurveyName": "Pulse"},
	}, surveys)
}

func TestVendorError(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getSurveyName": func(req *http.Request) (*http.Response, error) {
			return jsonResponse(200, `{"Meta":{"Status":"Fail","ErrorCode":1005,"ErrorMessage":"Bad thing"}}`), nil
		},
	})

	_, err := client.GetSurveyName(context.Background(), "SV_1")
	var vendor *VendorError
	require.ErrorAs(t, err, &vendor)
	require.Equal(t, "1005", vendor.Code)
	require.Equal(t, "Bad thing", vendor.Message)
}

func TestBareXmlPayload(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getSurvey": func(req *http.Request) (*http.Response, error) {
			return bodyResponse(200, "text/xml; charset=utf-8",
				`<SurveyDefinition><SurveyName>Pulse</SurveyName><Language>EN</Language></SurveyDefinition>`), nil
		},
	})

	payload, err := client.GetSurvey(context.Background(), "SV_1")
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"SurveyName": "Pulse",
		"Language":   "EN",
	}, payload)
}

func TestLegacyResponseExport(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getLegacyResponseData": func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "CSV", req.URL.Query().Get("Format"))
			return bodyResponse(200, "application/vnd.msexcel",
				"ResponseID,,Finished\n"+
					"Response ID,Favorite color,Finished\n"+
					"R_1,blue,1\n"+
					"R_2,\"green, dark\",0\n"), nil
		},
	})

	records, err := client.GetLegacyResponseData(context.Background(), "SV_1", nil)
	require.NoError(t, err)
	require.Equal(t, []map[string]string{
		{"ResponseID": "R_1", "Q2": "blue", "Finished": "1"},
		{"ResponseID": "R_2", "Q2": "green, dark", "Finished": "0"},
	}, records)
}

func TestLegacyResponseJsonIsUnshaped(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getLegacyResponseData": func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "JSON", req.URL.Query().Get("Format"))
			return jsonResponse(200, `{"Meta":{"Status":"Success"},"Result":{"Responses":[]}}`), nil
		},
	})

	payload, err := client.GetLegacyResponseData(
		context.Background(), "SV_1", Params{"Format": "JSON"})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"Responses": []any{}}, payload)
}

func TestLibraryFallsBackToCredentials(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getPanels": func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "GR_lib1", req.URL.Query().Get("LibraryID"))
			return jsonResponse(200, `{"Meta":{"Status":"Success"},"Result":{"Panels":[]}}`), nil
		},
	})

	_, err := client.GetPanels(context.Background())
	require.NoError(t, err)
}

func TestMissingParameterBeforeTransmit(t *testing.T) {
	client := newTestClient(t, nil)

	_, err := client.GetSurvey(context.Background(), "")
	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "SurveyID", missing.Field)
}

func TestHttp4xxWithEnvelope(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getSurveyName": func(req *http.Request) (*http.Response, error) {
			return jsonResponse(400, `{"Meta":{"Status":"Fail","ErrorCode":"400","ErrorMessage":"Invalid survey"}}`), nil
		},
	})

	_, err := client.GetSurveyName(context.Background(), "SV_bogus")
	var vendor *VendorError
	require.ErrorAs(t, err, &vendor)
	require.Equal(t, "400", vendor.Code)
	require.Equal(t, "Invalid survey", vendor.Message)
}

func TestHttp4xxWithoutEnvelope(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getSurveyName": func(req *http.Request) (*http.Response, error) {
			return bodyResponse(403, "text/html", "<html>forbidden</html>"), nil
		},
	})

	_, err := client.GetSurveyName(context.Background(), "SV_1")
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	require.Equal(t, 403, transport.StatusCode)
}

func TestHttp5xx(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getSurveys": func(req *http.Request) (*http.Response, error) {
			return bodyResponse(502, "text/html", "<html>bad gateway</html>"), nil
		},
	})

	_, err := client.GetSurveys(context.Background())
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	require.Equal(t, 502, transport.StatusCode)
}

func TestConnectionFailure(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getSurveys": func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		},
	})

	_, err := client.GetSurveys(context.Background())
	var transport *TransportError
	require.ErrorAs(t, err, &transport)
	require.Equal(t, 0, transport.StatusCode)
	require.Contains(t, transport.Message, "connection refused")
}

func TestUnknownContentType(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getSurveys": func(req *http.Request) (*http.Response, error) {
			return bodyResponse(200, "text/calendar", "BEGIN:VCALENDAR"), nil
		},
	})

	_, err := client.GetSurveys(context.Background())
	var unknown *wire.UnknownFormatError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "text/calendar", unknown.ContentType)
}

func TestPostVariant(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("POST", testEndpoint,
		func(req *http.Request) (*http.Response, error) {
			err := req.ParseForm()
			require.NoError(t, err)
			require.Equal(t, "getUserInfo", req.PostForm.Get("Request"))
			require.Equal(t, "tok_123", req.PostForm.Get("Token"))
			return jsonResponse(200, userInfoSuccess), nil
		})

	client, err := NewClient(context.Background(), ClientOptions{
		BaseUrl:   testEndpoint,
		Username:  "ops@example.com",
		Token:     "tok_123",
		UsePost:   true,
		Transport: transport,
	})
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestReservedParametersCannotBeClobbered(t *testing.T) {
	client := newTestClient(t, map[string]httpmock.Responder{
		"getSurveys": func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()
			require.Equal(t, "getSurveys", query.Get("Request"))
			require.Equal(t, "ops@example.com", query.Get("User"))
			require.Equal(t, "tok_123", query.Get("Token"))
			require.Equal(t, "2.5", query.Get("Version"))
			return jsonResponse(200, `{"Meta":{"Status":"Success"},"Result":{"Surveys":[]}}`), nil
		},
	})

	_, err := client.Call(context.Background(), "getSurveys", Params{
		"Request": "deletePanel",
		"User":    "intruder",
		"Token":   "stolen",
		"Version": "0.1",
	})
	require.NoError(t, err)
}

func TestUnknownOperation(t *testing.T) {
	client := newTestClient(t, nil)

	_, err := client.Call(context.Background(), "getNoSuchThing", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown operation")
}
