package handler

import (
	"net/http"

	"breachwatch/pkg/domain"
)

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	events, err := h.deps.Monitor.UserEvents(ctx, user.ID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if events == nil {
		events = []domain.BreachReport{}
	}

	writeJSON(ctx, w, http.StatusOK, events)
}
