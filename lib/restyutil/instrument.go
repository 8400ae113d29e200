// Package restyutil captures full request/response dumps from a resty
// client for debugging. Span instrumentation lives in lib/telemetry; this
// package only handles the dump output.
package restyutil

import (
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

// InstrumentOutput receives one formatted HTTP message per request,
// keyed by a monotonically increasing id.
type InstrumentOutput interface {
	Write(id string, contents string)
}

// InstrumentClient hooks the dump output into the client. A nil output
// makes the call a no-op.
func InstrumentClient(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		ctx := res.Request.Context()
		if !slog.Default().Enabled(ctx, slog.LevelDebug) {
			return nil
		}
		messageId := strconv.FormatUint(atomic.AddUint64(&idcounter, 1), 10)
		output.Write(messageId, formatHttpMessage(res))
		slog.DebugContext(
			ctx, "request completed",
			"method", res.Request.Method,
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"message_id", messageId,
		)
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		slog.ErrorContext(
			req.Context(), "request failed",
			"method", req.Method,
			"url", req.URL,
			"err", err,
		)
	})
}
