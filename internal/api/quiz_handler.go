package api

import (
	"log/slog"
	"net/http"

	"github.com/mkurosawa/kotoba-api/internal/api/shared"
	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/quiz"
)

// QuizHandler handles the quiz session endpoints.
type QuizHandler struct {
	quizService *quiz.Service
	logger      *slog.Logger
}

// NewQuizHandler creates a new QuizHandler with the given dependencies.
func NewQuizHandler(quizService *quiz.Service, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		quizService: quizService,
		logger:      logger.With(slog.String("component", "quiz_handler")),
	}
}

// StartSession handles POST /quiz/sessions. The target is either one of the
// character categories or "general" for a combined session; review restricts
// questions to previously missed items.
func (h *QuizHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req StartSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	target, err := domain.ParseCategory(req.Target)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	sess, err := h.quizService.StartSession(r.Context(), userID, target, req.Review)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewSessionResponse(sess))
}

// CurrentSession handles GET /quiz/sessions/current.
func (h *QuizHandler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	sess, err := h.quizService.CurrentSession(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewSessionResponse(sess))
}

// CurrentQuestion handles GET /quiz/sessions/current/question.
func (h *QuizHandler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	question, err := h.quizService.CurrentQuestion(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuestionResponse{Question: *question})
}

// SubmitAnswer handles POST /quiz/sessions/current/answer.
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.quizService.SubmitAnswer(r.Context(), userID, req.Answer)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AnswerResponse{Result: *result})
}

// Advance handles POST /quiz/sessions/current/next.
func (h *QuizHandler) Advance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	sess, err := h.quizService.Advance(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewSessionResponse(sess))
}

// Hint handles GET /quiz/sessions/current/hint. It reports the hint state
// for the current question: pending, the mnemonic artifact, or the failure
// kind. Polling this endpoint never blocks.
func (h *QuizHandler) Hint(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	sess, err := h.quizService.CurrentSession(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HintResponse{Hint: sess.Hint})
}

// Abandon handles DELETE /quiz/sessions/current.
func (h *QuizHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.quizService.Abandon(r.Context(), userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
