package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/go-chi/chi/v5"
)

type listUsersResponse struct {
	State string             `json:"state"`
	Users []userInfoResponse `json:"users"`
}

type privilegeRequest struct {
	Privilege *domain.Privilege `json:"privilege"`
}

type privilegeResponse struct {
	ID        int64            `json:"id"`
	Privilege domain.Privilege `json:"privilege"`
}

func userID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.New("id: must be an integer")
	}
	return id, nil
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.writeStorageError(w)
		return
	}

	out := make([]userInfoResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userInfoResponse{ID: u.ID, Name: u.Name, Privilege: u.Privilege})
	}
	h.writeJSON(w, http.StatusOK, listUsersResponse{State: stateOK, Users: out})
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(r, &req); err != nil {
		h.writeInvalid(w, err)
		return
	}
	if err := req.validate(); err != nil {
		h.writeInvalid(w, err)
		return
	}
	if *req.Name == "" {
		h.writeInvalid(w, errors.New("name: must not be empty"))
		return
	}

	u, err := h.users.Create(r.Context(), *req.Name, *req.HashPwd)
	switch {
	case errors.Is(err, domain.ErrUserExists):
		h.writeJSON(w, http.StatusOK, codeResponse{Code: codeFailure, Status: err.Error()})
		return
	case err != nil:
		h.writeStorageError(w)
		return
	}
	h.writeJSON(w, http.StatusOK, codeResponse{Code: codeOK, Status: stateOK, ID: u.ID})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		h.writeInvalid(w, err)
		return
	}
	if err = h.users.Delete(r.Context(), id); err != nil {
		h.writeStorageError(w)
		return
	}
	h.writeOK(w)
}

func (h *Handler) getPrivilege(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		h.writeInvalid(w, err)
		return
	}

	p, err := h.users.GetPrivilege(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Detail: "user not found"})
		return
	case err != nil:
		h.writeStorageError(w)
		return
	}
	h.writeJSON(w, http.StatusOK, privilegeResponse{ID: id, Privilege: p})
}

func (h *Handler) setPrivilege(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		h.writeInvalid(w, err)
		return
	}

	var req privilegeRequest
	if err = decodeJSON(r, &req); err != nil {
		h.writeInvalid(w, err)
		return
	}
	if req.Privilege == nil || !req.Privilege.Valid() {
		h.writeInvalid(w, errors.New("privilege: must be 0 (admin) or 1 (user)"))
		return
	}

	if err = h.users.SetPrivilege(r.Context(), id, *req.Privilege); err != nil {
		h.writeStorageError(w)
		return
	}
	h.writeOK(w)
}
