package handler

import (
	"net/http"

	"breachwatch/pkg/serrors"
)

// credentialsRequest is the request body for /register and /login.
type credentialsRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

// tokenResponse is the /login response body.
type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	if req.Identifier == "" || req.Secret == "" {
		writeError(ctx, w, serrors.With(ErrMissingField, "identifier and secret are required"))

		return
	}

	user, err := h.deps.Auth.Register(ctx, req.Identifier, req.Secret)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	if req.Identifier == "" || req.Secret == "" {
		writeError(ctx, w, serrors.With(ErrMissingField, "identifier and secret are required"))

		return
	}

	token, err := h.deps.Auth.Login(ctx, req.Identifier, req.Secret)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, tokenResponse{Token: token})
}

// logout is not behind requireAuth: Logout authenticates the token itself
// before putting it on the revocation list, and running the middleware first
// would just validate the same token twice.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, err := bearerToken(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if err := h.deps.Auth.Logout(ctx, token); err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, messageBody{Message: "logged out"})
}
