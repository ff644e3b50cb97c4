package handlers

import (
	"errors"
	"net/http"

	"github.com/Raimguhinov/alarmlog/internal/domain"
)

type addAlarmRequest struct {
	Timestamp     *flexTime `json:"timestamp"`
	Temperature   *float64  `json:"temperature"`
	SmokeDetected *bool     `json:"smoke_detected"`
	FireDetected  *bool     `json:"fire_detected"`
}

func (req addAlarmRequest) toAlarm() (domain.Alarm, error) {
	switch {
	case req.Temperature == nil:
		return domain.Alarm{}, errors.New("temperature: field required")
	case req.SmokeDetected == nil:
		return domain.Alarm{}, errors.New("smoke_detected: field required")
	case req.FireDetected == nil:
		return domain.Alarm{}, errors.New("fire_detected: field required")
	}

	a := domain.Alarm{
		Temperature:   *req.Temperature,
		SmokeDetected: *req.SmokeDetected,
		FireDetected:  *req.FireDetected,
	}
	if req.Timestamp != nil {
		a.Timestamp = req.Timestamp.Time
	}
	return a, nil
}

type listAlarmsResponse struct {
	State  string         `json:"state"`
	Alarms []domain.Alarm `json:"alarms"`
}

func (h *Handler) addAlarm(w http.ResponseWriter, r *http.Request) {
	var req addAlarmRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeInvalid(w, err)
		return
	}
	a, err := req.toAlarm()
	if err != nil {
		h.writeInvalid(w, err)
		return
	}

	if _, err = h.alarms.Add(r.Context(), a); err != nil {
		h.writeStorageError(w)
		return
	}
	h.writeOK(w)
}

func (h *Handler) listAlarms(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAlarmFilter(r.URL.Query())
	if err != nil {
		h.writeInvalid(w, err)
		return
	}

	alarms, err := h.alarms.List(r.Context(), filter)
	if err != nil {
		h.writeStorageError(w)
		return
	}
	if alarms == nil {
		alarms = []domain.Alarm{}
	}
	h.writeJSON(w, http.StatusOK, listAlarmsResponse{State: stateOK, Alarms: alarms})
}

func (h *Handler) deleteAlarms(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if err := decodeJSON(r, &ids); err != nil {
		h.writeInvalid(w, err)
		return
	}
	if err := h.alarms.Delete(r.Context(), ids); err != nil {
		h.writeStorageError(w)
		return
	}
	h.writeOK(w)
}

func (h *Handler) clearAlarms(w http.ResponseWriter, r *http.Request) {
	var ids []int64
	if err := decodeJSON(r, &ids); err != nil {
		h.writeInvalid(w, err)
		return
	}
	if err := h.alarms.Clear(r.Context(), ids); err != nil {
		h.writeStorageError(w)
		return
	}
	h.writeOK(w)
}
