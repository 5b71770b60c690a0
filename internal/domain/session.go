package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session length limits. A combined "general" session samples across all
// four character categories and is twice as long as a single-category one.
const (
	CategorySessionLength = 10
	GeneralSessionLength  = 20
)

// HintState tracks the lifecycle of the asynchronous mnemonic request for
// the current question.
type HintState string

const (
	// HintStateNone means no hint has been requested for the current question.
	HintStateNone HintState = "none"

	// HintStatePending means a mnemonic request is in flight. While pending,
	// answer submission for the same question is gated; navigation and
	// read-only queries are not.
	HintStatePending HintState = "pending"

	// HintStateReady means the mnemonic artifact has arrived.
	HintStateReady HintState = "ready"

	// HintStateFailed means the request failed; the failure kind says how.
	HintStateFailed HintState = "failed"
)

// HintFailure categorizes a failed mnemonic request. Authentication
// failures are kept distinct so the caller can surface a persistent
// credential banner; everything else (including malformed payloads) is a
// generic unavailability.
type HintFailure string

const (
	HintFailureNone              HintFailure = ""
	HintFailureUnavailable       HintFailure = "hint_unavailable"
	HintFailureInvalidCredential HintFailure = "invalid_credential"
)

// HintStatus is the per-question view of the mnemonic request.
type HintStatus struct {
	State HintState `json:"state"`

	// QuestionIndex is the question the request belongs to. A resolution
	// arriving after the session advanced past this index is discarded.
	QuestionIndex int `json:"question_index"`

	Mnemonic *Mnemonic   `json:"mnemonic,omitempty"`
	Failure  HintFailure `json:"failure,omitempty"`
}

// Session-specific errors.
var (
	// ErrSessionEmpty is returned when a session is created with no questions.
	ErrSessionEmpty = errors.New("quiz session must have at least one question")

	// ErrHintNotRequested is returned when a hint resolution arrives for a
	// question that has no pending request.
	ErrHintNotRequested = errors.New("no pending hint request")
)

// QuizSession is one active quiz: a fixed, ordered list of questions, a
// cursor, and per-session bookkeeping. Sessions are ephemeral; they are
// destroyed when the learner exits or starts a new one.
//
// A session is not safe for concurrent use. The quiz service serializes all
// access to it; the only concurrency concession is that hint resolutions are
// applied through guarded methods that discard stale deliveries.
type QuizSession struct {
	ID        uuid.UUID       `json:"id"`
	Target    Category        `json:"target"`
	Review    bool            `json:"review"`
	Questions []LearnableItem `json:"questions"`

	CurrentIndex int      `json:"current_index"`
	Score        int      `json:"score"`
	Mistakes     []string `json:"mistakes"`
	Completed    bool     `json:"completed"`

	// Answered and LastCorrect describe the current question's state
	// between submission and advance.
	Answered    bool `json:"answered"`
	LastCorrect bool `json:"last_correct"`

	Hint HintStatus `json:"hint"`

	CreatedAt time.Time `json:"created_at"`
}

// NewQuizSession creates a fresh session over the given question list.
// The question order is fixed at creation; the builder owns shuffling.
func NewQuizSession(target Category, review bool, questions []LearnableItem) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, ErrSessionEmpty
	}
	return &QuizSession{
		ID:        uuid.New(),
		Target:    target,
		Review:    review,
		Questions: questions,
		Mistakes:  []string{},
		Hint:      HintStatus{State: HintStateNone},
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Length returns the number of questions in the session.
func (s *QuizSession) Length() int {
	return len(s.Questions)
}

// CurrentItem returns the question under the cursor.
func (s *QuizSession) CurrentItem() (LearnableItem, error) {
	if s.Completed {
		return LearnableItem{}, ErrSessionCompleted
	}
	return s.Questions[s.CurrentIndex], nil
}

// Judge compares the submitted answer against the current question's
// expected answer using exact string equality: no normalization, no case
// folding. It does not record the outcome; callers that persist side
// effects commit them first and then call RecordAnswer.
//
// Judging an already answered question returns ErrQuestionAnswered; this is
// the gate that blocks re-answering a question while its hint request is
// still pending.
func (s *QuizSession) Judge(answer string) (bool, error) {
	if s.Completed {
		return false, ErrSessionCompleted
	}
	if s.Answered {
		return false, ErrQuestionAnswered
	}
	return answer == s.Questions[s.CurrentIndex].ExpectedAnswer(), nil
}

// RecordAnswer marks the current question as answered with the given
// outcome. On success the session score advances; on failure the item ID is
// appended to the mistake list (duplicates kept). Must follow a successful
// Judge for the same question.
func (s *QuizSession) RecordAnswer(correct bool) {
	s.Answered = true
	s.LastCorrect = correct
	if correct {
		s.Score++
	} else {
		s.Mistakes = append(s.Mistakes, s.Questions[s.CurrentIndex].ID)
	}
}

// SubmitAnswer judges and records the answer in one step.
func (s *QuizSession) SubmitAnswer(answer string) (bool, error) {
	correct, err := s.Judge(answer)
	if err != nil {
		return false, err
	}
	s.RecordAnswer(correct)
	return correct, nil
}

// AwaitHint marks the current question as having a mnemonic request in
// flight. Only meaningful after an incorrect answer.
func (s *QuizSession) AwaitHint() error {
	if s.Completed {
		return ErrSessionCompleted
	}
	if !s.Answered || s.LastCorrect {
		return ErrHintNotRequested
	}
	s.Hint = HintStatus{State: HintStatePending, QuestionIndex: s.CurrentIndex}
	return nil
}

// ResolveHint applies a mnemonic artifact for the given question index.
// Returns false when the delivery is stale: the session advanced, completed,
// or never asked. Stale deliveries are silently dropped by the caller.
func (s *QuizSession) ResolveHint(questionIndex int, m *Mnemonic) bool {
	if !s.hintPendingFor(questionIndex) {
		return false
	}
	s.Hint.State = HintStateReady
	s.Hint.Mnemonic = m
	return true
}

// FailHint records a hint failure for the given question index, clearing
// the pending gate. Returns false for stale deliveries.
func (s *QuizSession) FailHint(questionIndex int, failure HintFailure) bool {
	if !s.hintPendingFor(questionIndex) {
		return false
	}
	s.Hint.State = HintStateFailed
	s.Hint.Failure = failure
	return true
}

func (s *QuizSession) hintPendingFor(questionIndex int) bool {
	return !s.Completed &&
		s.Hint.State == HintStatePending &&
		s.Hint.QuestionIndex == questionIndex &&
		s.CurrentIndex == questionIndex
}

// Advance moves the cursor to the next question, or transitions the session
// to its terminal state after the last one. Advancing discards any hint
// still pending for the question being left; a late resolution will no
// longer match and is dropped.
func (s *QuizSession) Advance() error {
	if s.Completed {
		return ErrSessionCompleted
	}
	if !s.Answered {
		return ErrQuestionNotAnswered
	}

	if s.CurrentIndex >= len(s.Questions)-1 {
		s.Completed = true
	} else {
		s.CurrentIndex++
	}
	s.Answered = false
	s.LastCorrect = false
	s.Hint = HintStatus{State: HintStateNone, QuestionIndex: s.CurrentIndex}
	return nil
}
