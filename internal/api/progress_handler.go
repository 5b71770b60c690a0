package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkurosawa/kotoba-api/internal/api/shared"
	"github.com/mkurosawa/kotoba-api/internal/catalog"
	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/quiz"
	"github.com/mkurosawa/kotoba-api/internal/store"
)

// ProgressHandler serves per-item mastery standing.
type ProgressHandler struct {
	progressStore store.ProgressStore
	catalog       *catalog.Catalog
	logger        *slog.Logger
}

// NewProgressHandler creates a new ProgressHandler with the given dependencies.
func NewProgressHandler(progressStore store.ProgressStore, cat *catalog.Catalog, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		progressStore: progressStore,
		catalog:       cat,
		logger:        logger.With(slog.String("component", "progress_handler")),
	}
}

// GetItemProgress handles GET /progress/{itemID}. It classifies the item's
// study status and proficiency tier from the learner's progress record.
func (h *ProgressHandler) GetItemProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		HandleAPIError(w, r, domain.ErrInvalidID, "Item ID is required")
		return
	}
	if _, ok := h.catalog.ByID(itemID); !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Item not found")
		return
	}

	progress, err := h.progressStore.Get(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load progress")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProgressResponse{
		ItemID:       itemID,
		Status:       quiz.ItemStatus(itemID, progress),
		Proficiency:  quiz.ItemProficiency(itemID, progress),
		SuccessCount: progress.SuccessCount(itemID),
		MistakeCount: progress.MistakeCount(itemID),
		Mastered:     progress.IsMastered(itemID),
	})
}
