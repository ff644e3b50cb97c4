package handlers

import (
	"errors"
	"net/http"

	"github.com/Raimguhinov/alarmlog/internal/auth"
	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
)

type credentials struct {
	Name    *string `json:"name"`
	HashPwd *string `json:"hash_pwd"`
}

// validate rejects absent fields only; empty strings are valid input.
func (c credentials) validate() error {
	if c.Name == nil {
		return errors.New("name: field required")
	}
	if c.HashPwd == nil {
		return errors.New("hash_pwd: field required")
	}
	return nil
}

// login answers 200 for both outcomes; the body code tells them apart.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeJSON(r, &req); err != nil {
		h.writeInvalid(w, err)
		return
	}
	if err := req.validate(); err != nil {
		h.writeInvalid(w, err)
		return
	}

	uid, err := h.users.Authenticate(r.Context(), *req.Name, *req.HashPwd)
	switch {
	case errors.Is(err, domain.ErrUserNotExist), errors.Is(err, domain.ErrIncorrectPassword):
		h.writeJSON(w, http.StatusOK, codeResponse{Code: codeFailure, Status: err.Error()})
		return
	case err != nil:
		h.writeStorageError(w)
		return
	}

	if err = h.auth.Login(r.Context(), w, uid, *req.Name, *req.HashPwd); err != nil {
		h.logger.Error("handlers.login", logger.Err(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "Session store error occurred"})
		return
	}
	h.writeJSON(w, http.StatusOK, codeResponse{Code: codeOK, Status: stateOK})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(w, r); err != nil {
		h.logger.Error("handlers.logout", logger.Err(err))
	}
	h.redirectToLogin(w, r)
}

type userInfoResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Privilege domain.Privilege `json:"privilege"`
}

func (h *Handler) userInfo(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := auth.FromContext(r.Context())
	if !ok {
		h.redirectToLogin(w, r)
		return
	}

	u, err := h.users.GetByID(r.Context(), authCtx.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.redirectToLogin(w, r)
		return
	case err != nil:
		h.writeStorageError(w)
		return
	}
	h.writeJSON(w, http.StatusOK, userInfoResponse{ID: u.ID, Name: u.Name, Privilege: u.Privilege})
}
