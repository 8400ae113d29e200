// Package qualtrics is a typed client for the vendor's v2 control-panel
// REST API: one fixed endpoint, username/token authentication, and a set
// of named operations whose responses arrive as JSON, XML or a bespoke
// CSV dialect.
package qualtrics

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"qualtrics-client/lib/platforms/qualtrics/wire"
	"qualtrics-client/lib/restyutil"
	"qualtrics-client/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("platforms/qualtrics")

const apiVersion = "2.5"

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables request/response dumps for every client
// constructed afterwards. Intended for debugging, wired up by the CLI.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyInstrumentOutput = output
}

// Credentials authenticate every call. LibraryID is optional; when set it
// is used as the default for operations that require a library.
type Credentials struct {
	Username  string
	Token     string
	LibraryID string
}

// Client holds no mutable per-call state beyond the shared transport, so
// concurrent calls on one instance are safe to the extent the underlying
// http transport supports them.
type Client struct {
	BaseUrl *url.URL
	http    *resty.Client
	creds   Credentials
	usePost bool
}

type ClientOptions struct {
	BaseUrl   string
	Username  string
	Token     string
	LibraryID string
	// Timeout bounds every call including the verification call below.
	// Zero keeps the historical behavior of waiting indefinitely.
	Timeout time.Duration
	// UsePost carries the parameters in a form body instead of the
	// query string. The API accepts both.
	UsePost bool
	// Transport replaces the underlying round tripper, primarily so
	// tests can intercept requests.
	Transport http.RoundTripper
}

// NewClient validates the credentials with an immediate getUserInfo call
// before returning, so construction failing can mean either a bad token or
// a network problem; the two are not distinguishable at this layer.
func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.Username == "" {
		return nil, &MissingParameterError{Operation: "NewClient", Field: "User"}
	}
	if opts.Token == "" {
		return nil, &MissingParameterError{Operation: "NewClient", Field: "Token"}
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(opts.Timeout)
	if opts.Transport != nil {
		client.SetTransport(opts.Transport)
	}

	telemetry.InstrumentResty(client, "platform/qualtrics/http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	c := &Client{
		BaseUrl: baseUrl,
		http:    client,
		creds: Credentials{
			Username:  opts.Username,
			Token:     opts.Token,
			LibraryID: opts.LibraryID,
		},
		usePost: opts.UsePost,
	}

	_, err = c.GetUserInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	return c, nil
}

// Call invokes a named operation with the given parameters. It is the
// generic entry point behind every typed method and is exported as an
// escape hatch for operations gaining parameters faster than this package.
func (c *Client) Call(ctx context.Context, operation string, params Params) (any, error) {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("client:%s", operation))
	defer span.End()

	desc, ok := descriptors[operation]
	if !ok {
		return nil, fmt.Errorf("unknown operation: %q", operation)
	}

	caller := make(Params, len(params)+1)
	for key, value := range params {
		caller[key] = value
	}
	if c.creds.LibraryID != "" && desc.requires("LibraryID") {
		if _, set := caller["LibraryID"]; !set {
			caller["LibraryID"] = c.creds.LibraryID
		}
	}

	merged, err := desc.Build(caller, time.Now())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	values := url.Values{}
	for key, value := range merged {
		values.Set(key, value)
	}
	// the reserved parameters are written last so nothing smuggled
	// through Call can clobber the credentials or the target operation
	values.Set("Request", operation)
	values.Set("User", c.creds.Username)
	values.Set("Token", c.creds.Token)
	values.Set("Version", apiVersion)

	var res *resty.Response
	if c.usePost {
		res, err = c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetBody(values.Encode()).
			Post("")
	} else {
		res, err = c.http.R().
			SetContext(ctx).
			SetQueryParamsFromValues(values).
			Get("")
	}
	if err != nil {
		span.SetStatus(codes.Error, "transport failure")
		return nil, &TransportError{Message: err.Error()}
	}

	payload, err := interpret(res)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return payload, nil
}

// interpret maps the HTTP status and the vendor status envelope onto a
// success payload or a typed error.
func interpret(res *resty.Response) (any, error) {
	status := res.StatusCode()
	if status >= 500 {
		return nil, &TransportError{
			StatusCode: status,
			Message:    http.StatusText(status),
		}
	}

	parsed, parseErr := wire.Parse(res.Header(), res.Body())

	if status >= 400 {
		// the API reports some business failures with a 4xx carrying a
		// regular envelope; surface those as vendor errors
		if parseErr == nil {
			if env, ok := wire.ExtractEnvelope(parsed.Body); ok {
				return nil, &VendorError{
					Code:    strconv.Itoa(status),
					Message: env.ErrorMessage,
				}
			}
		}
		return nil, &TransportError{
			StatusCode: status,
			Message:    http.StatusText(status),
		}
	}

	if parseErr != nil {
		return nil, parseErr
	}

	env, ok := wire.ExtractEnvelope(parsed.Body)
	if !ok {
		// a small set of operations returns the payload bare
		return parsed.Body, nil
	}
	if env.Status != wire.StatusSuccess {
		return nil, &VendorError{Code: env.ErrorCode, Message: env.ErrorMessage}
	}
	return env.Result, nil
}
