package quiz

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mkurosawa/kotoba-api/internal/catalog"
	"github.com/mkurosawa/kotoba-api/internal/domain"
	"github.com/mkurosawa/kotoba-api/internal/events"
	"github.com/mkurosawa/kotoba-api/internal/store"
)

// TaskTypeHintGeneration identifies mnemonic generation events. The task
// package declares the same string; the duplication avoids an import cycle
// between the emitting and consuming sides.
const TaskTypeHintGeneration = "hint_generation"

// HintRequestPayload is the event payload for a mnemonic request.
type HintRequestPayload struct {
	UserID        uuid.UUID `json:"user_id"`
	SessionID     uuid.UUID `json:"session_id"`
	QuestionIndex int       `json:"question_index"`
	ItemID        string    `json:"item_id"`
}

// Question is the presentation view of the current question: the item, its
// shuffled answer options, and the session cursor.
type Question struct {
	Item    domain.LearnableItem `json:"item"`
	Options []string             `json:"options"`
	Index   int                  `json:"index"`
	Total   int                  `json:"total"`
}

// AnswerResult reports the outcome of an answer submission.
type AnswerResult struct {
	Correct        bool   `json:"correct"`
	ExpectedAnswer string `json:"expected_answer"`
	NewlyMastered  bool   `json:"newly_mastered"`
	Score          int    `json:"score"`
	HintRequested  bool   `json:"hint_requested"`
}

// Service orchestrates quiz sessions: it builds them from the discovered
// pools, judges answers, commits progress, and dispatches asynchronous
// mnemonic requests for incorrect answers.
//
// Progress mutations are committed before the hint event is emitted, so a
// failed or slow hint never rolls back or blocks mastery bookkeeping.
type Service struct {
	progressStore store.ProgressStore
	catalog       *catalog.Catalog
	sessions      *Registry
	emitter       events.EventEmitter
	logger        *slog.Logger
	newRand       func() *rand.Rand
}

// NewService creates the quiz service. A nil emitter disables hint
// dispatch; incorrect answers then resolve immediately as hint unavailable.
func NewService(
	progressStore store.ProgressStore,
	cat *catalog.Catalog,
	emitter events.EventEmitter,
	logger *slog.Logger,
) *Service {
	return &Service{
		progressStore: progressStore,
		catalog:       cat,
		sessions:      NewRegistry(),
		emitter:       emitter,
		logger:        logger.With(slog.String("component", "quiz_service")),
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// SetRandSource replaces the default time-seeded source factory. Tests use
// a fixed seed for deterministic shuffles.
func (s *Service) SetRandSource(newRand func() *rand.Rand) {
	s.newRand = newRand
}

// StartSession builds a fresh session for the user and makes it their
// active one, replacing any session in progress.
func (s *Service) StartSession(ctx context.Context, userID uuid.UUID, target domain.Category, review bool) (*domain.QuizSession, error) {
	progress, err := s.progressStore.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	session, err := BuildSession(target, review, progress, s.catalog, s.newRand())
	if err != nil {
		return nil, err
	}

	s.sessions.Start(userID, session)
	s.logger.Info("quiz session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.String("target", string(target)),
		slog.Bool("review", review),
		slog.Int("questions", session.Length()))
	return session, nil
}

// CurrentSession returns a copy of the user's active session.
func (s *Service) CurrentSession(ctx context.Context, userID uuid.UUID) (*domain.QuizSession, error) {
	var snapshot domain.QuizSession
	err := s.sessions.WithSession(userID, func(sess *domain.QuizSession) error {
		snapshot = *sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// CurrentQuestion returns the question under the cursor with its shuffled
// option set.
func (s *Service) CurrentQuestion(ctx context.Context, userID uuid.UUID) (*Question, error) {
	var q Question
	err := s.sessions.WithSession(userID, func(sess *domain.QuizSession) error {
		item, err := sess.CurrentItem()
		if err != nil {
			return err
		}
		q = Question{
			Item:    item,
			Options: Options(item, s.catalog, questionRand(sess.ID, sess.CurrentIndex)),
			Index:   sess.CurrentIndex,
			Total:   sess.Length(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// questionRand derives a deterministic source from the session and question
// identity, so polling the current question never reorders or resamples its
// options.
func questionRand(sessionID uuid.UUID, index int) *rand.Rand {
	h := fnv.New64a()
	h.Write(sessionID[:])
	var idx [8]byte
	binary.BigEndian.PutUint64(idx[:], uint64(index))
	h.Write(idx[:])
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// SubmitAnswer evaluates the answer for the current question, commits the
// progress mutation, and on an incorrect answer dispatches a mnemonic
// request. Submissions are rejected while a hint for the same question is
// still pending.
func (s *Service) SubmitAnswer(ctx context.Context, userID uuid.UUID, answer string) (*AnswerResult, error) {
	var result AnswerResult
	err := s.sessions.WithSession(userID, func(sess *domain.QuizSession) error {
		if sess.Answered && sess.Hint.State == domain.HintStatePending {
			return ErrHintPending
		}

		item, err := sess.CurrentItem()
		if err != nil {
			return err
		}

		correct, err := sess.Judge(answer)
		if err != nil {
			return err
		}

		progress, err := s.progressStore.Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("loading progress: %w", err)
		}

		var newlyMastered bool
		if correct {
			newlyMastered = progress.RecordCorrect(item.ID)
		} else {
			progress.RecordIncorrect(item.ID)
		}

		// The progress write is durable before the session consumes the
		// question. A failed write leaves the question unanswered, so the
		// submission can be retried without losing the attempt.
		if err := s.progressStore.Save(ctx, userID, progress); err != nil {
			return fmt.Errorf("saving progress: %w", err)
		}

		sess.RecordAnswer(correct)

		result = AnswerResult{
			Correct:        correct,
			ExpectedAnswer: item.ExpectedAnswer(),
			NewlyMastered:  newlyMastered,
			Score:          sess.Score,
		}

		if !correct {
			result.HintRequested = s.requestHint(ctx, userID, sess, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// requestHint marks the session as awaiting a mnemonic and emits the
// generation event. Emission failures resolve the hint as unavailable
// immediately; they never fail the answer submission.
func (s *Service) requestHint(ctx context.Context, userID uuid.UUID, sess *domain.QuizSession, item domain.LearnableItem) bool {
	if err := sess.AwaitHint(); err != nil {
		return false
	}

	if s.emitter == nil {
		sess.FailHint(sess.CurrentIndex, domain.HintFailureUnavailable)
		return false
	}

	payload := HintRequestPayload{
		UserID:        userID,
		SessionID:     sess.ID,
		QuestionIndex: sess.CurrentIndex,
		ItemID:        item.ID,
	}
	event, err := events.NewTaskRequestEvent(TaskTypeHintGeneration, payload)
	if err == nil {
		err = s.emitter.EmitEvent(ctx, event)
	}
	if err != nil {
		s.logger.Error("failed to dispatch hint request",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("item_id", item.ID))
		sess.FailHint(sess.CurrentIndex, domain.HintFailureUnavailable)
		return false
	}

	s.logger.Debug("hint request dispatched",
		slog.String("user_id", userID.String()),
		slog.String("item_id", item.ID),
		slog.Int("question_index", sess.CurrentIndex))
	return true
}

// Advance moves the session to the next question, or completes it after
// the last one.
func (s *Service) Advance(ctx context.Context, userID uuid.UUID) (*domain.QuizSession, error) {
	var snapshot domain.QuizSession
	err := s.sessions.WithSession(userID, func(sess *domain.QuizSession) error {
		if err := sess.Advance(); err != nil {
			return err
		}
		snapshot = *sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Abandon discards the user's active session. A hint response still in
// flight for it will no longer match anything and is dropped.
func (s *Service) Abandon(ctx context.Context, userID uuid.UUID) error {
	s.sessions.End(userID)
	return nil
}

// DeliverHint applies a generated mnemonic to the user's session. The
// delivery is dropped unless the session and question it was requested for
// are still current.
func (s *Service) DeliverHint(ctx context.Context, userID, sessionID uuid.UUID, questionIndex int, m *domain.Mnemonic) {
	err := s.sessions.WithSession(userID, func(sess *domain.QuizSession) error {
		if sess.ID != sessionID || !sess.ResolveHint(questionIndex, m) {
			s.logger.Debug("discarding stale hint delivery",
				slog.String("user_id", userID.String()),
				slog.String("session_id", sessionID.String()),
				slog.Int("question_index", questionIndex))
		}
		return nil
	})
	if err != nil {
		s.logger.Debug("hint delivery for inactive session",
			slog.String("user_id", userID.String()),
			slog.String("session_id", sessionID.String()))
	}
}

// FailHint records a hint failure against the user's session, subject to
// the same staleness rules as DeliverHint.
func (s *Service) FailHint(ctx context.Context, userID, sessionID uuid.UUID, questionIndex int, failure domain.HintFailure) {
	err := s.sessions.WithSession(userID, func(sess *domain.QuizSession) error {
		if sess.ID != sessionID || !sess.FailHint(questionIndex, failure) {
			s.logger.Debug("discarding stale hint failure",
				slog.String("user_id", userID.String()),
				slog.String("session_id", sessionID.String()))
		}
		return nil
	})
	if err != nil {
		s.logger.Debug("hint failure for inactive session",
			slog.String("user_id", userID.String()),
			slog.String("session_id", sessionID.String()))
	}
}
