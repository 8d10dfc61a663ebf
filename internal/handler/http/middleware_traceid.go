package http

import (
	"net/http"

	"github.com/MKhiriev/go-fedi-wallet/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// withTraceID attaches a request-scoped logger carrying trace_id to the
// request context. An incoming X-Trace-ID is reused, otherwise a UUIDv4 is
// generated. The id is echoed back in the response header and forwarded to
// the wallet daemon.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(utils.TraceIDHeader, traceID)
		ctx := utils.WithTraceID(r.Context(), traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}
