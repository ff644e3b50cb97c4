package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Raimguhinov/alarmlog/pkg/logger"
)

const (
	stateOK       = "ok"
	codeOK        = 0
	codeFailure   = -1
	maxBodyBytes  = 1 << 20
	storageDetail = "Database error occurred"
)

type stateResponse struct {
	State string `json:"state"`
}

type codeResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	ID     int64  `json:"id,omitempty"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("handlers.writeJSON", logger.Err(err))
	}
}

func (h *Handler) writeOK(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusOK, stateResponse{State: stateOK})
}

func (h *Handler) writeStorageError(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: storageDetail})
}

func (h *Handler) writeInvalid(w http.ResponseWriter, err error) {
	h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
}

// decodeJSON reads exactly one JSON value from the request body into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}
