package httpapi

import "net/http"

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// datasetCaveats are static interpretation notes served with every dataset
// health payload.
var datasetCaveats = []string{
	"shot outcome categories come from independently tracked columns and may overlap; percentages need not sum to 100",
}

func (h *Handler) GetDatasetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDatasetHealth")
	defer span.End()

	status, err := h.datasetService.Status(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "dataset health failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, datasetHealthToDTO(ctx, status, datasetCaveats))
}

func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReloadDataset")
	defer span.End()

	status, err := h.datasetService.Load(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "dataset reload failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "dataset reloaded",
		"generation", status.Generation,
		"records", status.TotalRecords,
	)
	writeSuccess(ctx, w, http.StatusOK, datasetHealthToDTO(ctx, status, datasetCaveats))
}
