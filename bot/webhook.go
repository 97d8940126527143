package bot

import (
	"encoding/json"
	"io"
	"net/http"

	"code.cloudfoundry.org/lager"
	"github.com/google/uuid"
)

const maxUpdateSize = 1 << 20

// Webhook receives updates from the chat platform. It answers 200 for
// anything it can read, acted on or not, so the platform does not redeliver.
type Webhook struct {
	handler *Handler
	logger  lager.Logger
}

func NewWebhook(handler *Handler, logger lager.Logger) *Webhook {
	return &Webhook{handler: handler, logger: logger}
}

func (wh *Webhook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]interface{}{"error": "method not allowed"})
		return
	}

	lsession := wh.logger.Session("webhook", lager.Data{"request-id": uuid.NewString()})

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUpdateSize))
	if err != nil {
		lsession.Error("read-body", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
		return
	}

	update, err := ParseUpdate(body)
	if err != nil {
		lsession.Error("parse-update", err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
		return
	}
	if update == nil {
		lsession.Debug("ignored-update")
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
		return
	}

	if err := wh.handler.Handle(update); err != nil {
		lsession.Error("handle-update", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
