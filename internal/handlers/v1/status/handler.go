package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/finance-server/internal/logging"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Store Pinger
}

// NewHandler builds the status handler. A nil store always reports healthy.
func NewHandler(store Pinger) Handler {
	return Handler{Store: store}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.Store != nil {
		endTimer := logData.AddTiming("pingDuration")
		err := h.Store.PingContext(req.Context())
		endTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return fmt.Errorf("status: ping storage: %w", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
