package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/api/shared"
	"github.com/mkurosawa/kotoba-api/internal/catalog"
	"github.com/mkurosawa/kotoba-api/internal/discovery"
	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/lookup"
	"github.com/mkurosawa/kotoba-api/internal/store"
)

// ContentHandler serves the discovered catalog pools, the grammar reference,
// and dictionary lookups.
type ContentHandler struct {
	progressStore store.ProgressStore
	catalog       *catalog.Catalog
	logger        *slog.Logger

	// One unlock tracker per learner, so "just unlocked" is reported to the
	// learner who earned it and exactly once. A tracker is a few counters;
	// entries are kept for the process lifetime, with no eviction. Moving
	// them into the progress record would let them follow the learner
	// across restarts and instances.
	mu       sync.Mutex
	trackers map[uuid.UUID]*discovery.Tracker
}

// NewContentHandler creates a new ContentHandler with the given dependencies.
func NewContentHandler(progressStore store.ProgressStore, cat *catalog.Catalog, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentHandler{
		progressStore: progressStore,
		catalog:       cat,
		logger:        logger.With(slog.String("component", "content_handler")),
		trackers:      make(map[uuid.UUID]*discovery.Tracker),
	}
}

func (h *ContentHandler) trackerFor(userID uuid.UUID) *discovery.Tracker {
	h.mu.Lock()
	defer h.mu.Unlock()
	t, ok := h.trackers[userID]
	if !ok {
		t = discovery.NewTracker()
		h.trackers[userID] = t
	}
	return t
}

// GetCategory handles GET /catalog/{category}. It returns the learner's
// discovered pool for the category plus any items revealed since their
// previous look.
func (h *ContentHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	category, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !category.IsCharacterCategory() {
		HandleAPIError(w, r, domain.ErrInvalidCategory, "Category has no discoverable pool")
		return
	}

	progress, err := h.progressStore.Get(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load progress")
		return
	}

	pool, unlocked := h.trackerFor(userID).Observe(category, h.catalog, progress)

	shared.RespondWithJSON(w, r, http.StatusOK, CatalogResponse{
		Category: category,
		Items:    pool,
		Unlocked: unlocked,
	})
}

// GetGrammar handles GET /grammar.
func (h *ContentHandler) GetGrammar(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GrammarResponse{
		Points: h.catalog.Grammar(),
	})
}

// Lookup handles GET /lookup?q=&category=. It returns the external
// dictionary URL for the term; the category only selects the search mode.
func (h *ContentHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	term := r.URL.Query().Get("q")
	if term == "" {
		HandleAPIError(w, r, domain.ErrValidation, "Query term is required")
		return
	}

	category := domain.CategoryVocabulary
	if raw := r.URL.Query().Get("category"); raw != "" {
		parsed, err := domain.ParseCategory(raw)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		category = parsed
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LookupResponse{
		URL: lookup.QueryURL(term, category),
	})
}
