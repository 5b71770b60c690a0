package api

import (
	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/quiz"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh
// endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// StartSessionRequest defines the payload for starting a quiz session.
type StartSessionRequest struct {
	Target string `json:"target" validate:"required"`
	Review bool   `json:"review"`
}

// SessionResponse is the trimmed session view returned to clients. The
// question list itself is deliberately absent; questions are served one at a
// time through the current-question endpoint.
type SessionResponse struct {
	ID           uuid.UUID         `json:"id"`
	Target       domain.Category   `json:"target"`
	Review       bool              `json:"review"`
	Length       int               `json:"length"`
	CurrentIndex int               `json:"current_index"`
	Score        int               `json:"score"`
	Completed    bool              `json:"completed"`
	Hint         domain.HintStatus `json:"hint"`
}

// NewSessionResponse builds the client view of a session.
func NewSessionResponse(sess *domain.QuizSession) SessionResponse {
	return SessionResponse{
		ID:           sess.ID,
		Target:       sess.Target,
		Review:       sess.Review,
		Length:       sess.Length(),
		CurrentIndex: sess.CurrentIndex,
		Score:        sess.Score,
		Completed:    sess.Completed,
		Hint:         sess.Hint,
	}
}

// QuestionResponse is the current question with its shuffled options.
type QuestionResponse struct {
	Question quiz.Question `json:"question"`
}

// AnswerRequest defines the payload for submitting an answer.
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// AnswerResponse reports the verdict for a submitted answer.
type AnswerResponse struct {
	Result quiz.AnswerResult `json:"result"`
}

// HintResponse is the current hint state for the active question.
type HintResponse struct {
	Hint domain.HintStatus `json:"hint"`
}

// ProgressResponse reports the learner's standing on a single item.
type ProgressResponse struct {
	ItemID       string           `json:"item_id"`
	Status       quiz.Status      `json:"status"`
	Proficiency  quiz.Proficiency `json:"proficiency"`
	SuccessCount int              `json:"success_count"`
	MistakeCount int              `json:"mistake_count"`
	Mastered     bool             `json:"mastered"`
}

// CatalogResponse is the discovered pool for one category, with the items
// revealed since the learner's previous look.
type CatalogResponse struct {
	Category domain.Category        `json:"category"`
	Items    []domain.LearnableItem `json:"items"`
	Unlocked []domain.LearnableItem `json:"unlocked,omitempty"`
}

// GrammarResponse lists the grammar points.
type GrammarResponse struct {
	Points []domain.GrammarPoint `json:"points"`
}

// LookupResponse carries the external dictionary URL for a term.
type LookupResponse struct {
	URL string `json:"url"`
}
