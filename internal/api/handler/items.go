package handler

import (
	"net/http"

	"breachwatch/pkg/domain"
	"breachwatch/pkg/serrors"
)

// addItemRequest is the request body for POST /items.
type addItemRequest struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	var req addItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	if req.Kind == "" || req.Value == "" {
		writeError(ctx, w, serrors.With(ErrMissingField, "kind and value are required"))

		return
	}

	item, err := h.deps.Monitor.AddItem(ctx, user.ID, domain.ItemKind(req.Kind), req.Value)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, item)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	items, err := h.deps.Monitor.UserItems(ctx, user.ID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if items == nil {
		items = []domain.MonitoredItem{}
	}

	writeJSON(ctx, w, http.StatusOK, items)
}

func (h *Handler) checkItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	summary, err := h.deps.Monitor.CheckAll(ctx, user.ID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, summary)
}
