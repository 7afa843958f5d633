// Package recovery implements the local account-recovery flow: a three-step
// state machine that identifies an account by name and birth date, verifies
// the account's security question answer, and reveals the account email.
// It works entirely against the local user slot; no network is involved.
package recovery

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/narabid/bidassist/internal/domain"
)

// Step is the resolver's current position in the flow.
type Step int

const (
	StepIdentify Step = iota
	StepAnswer
	StepResult
)

func (s Step) String() string {
	switch s {
	case StepIdentify:
		return "identify"
	case StepAnswer:
		return "answer"
	case StepResult:
		return "result"
	}
	return "unknown"
}

// Store supplies the registered-account records. Reads happen on every
// transition: the slot is mutable for the duration of the flow (another
// process may rewrite it), so captured state is re-validated against a
// fresh read rather than trusted.
type Store interface {
	ReadUsers() []domain.UserRecord
}

// Resolver is the account-recovery state machine. It is not safe for
// concurrent use; drive it from a single event loop.
type Resolver struct {
	store Store

	step          Step
	name          string
	birthDate     string
	questionIndex int
	targetEmail   string
	revealedEmail string
}

// New returns a Resolver in StepIdentify.
func New(store Store) *Resolver {
	return &Resolver{store: store}
}

// Step returns the current step.
func (r *Resolver) Step() Step { return r.step }

// Name returns the identify-step name input, preserved across Retry.
func (r *Resolver) Name() string { return r.name }

// BirthDate returns the identify-step birth date input, preserved across Retry.
func (r *Resolver) BirthDate() string { return r.birthDate }

// Question returns the security question text for the captured index.
// Only meaningful in StepAnswer.
func (r *Resolver) Question() string {
	if r.step != StepAnswer {
		return ""
	}
	return SecurityQuestions[r.questionIndex]
}

// QuestionIndex returns the captured question index. Only meaningful in
// StepAnswer.
func (r *Resolver) QuestionIndex() int { return r.questionIndex }

// RevealedEmail returns the recovered account email. Only non-empty in
// StepResult.
func (r *Resolver) RevealedEmail() string { return r.revealedEmail }

// Identify matches name (trimmed, case-folded) and birthDate (exact string)
// against the slot and captures the first matching record in slot order.
// On success the resolver moves to StepAnswer. ErrAccountNotFound and
// ErrNoRecoveryQuestion leave it in StepIdentify.
func (r *Resolver) Identify(name, birthDate string) error {
	if r.step != StepIdentify {
		return ErrNotInStep
	}
	r.name = name
	r.birthDate = birthDate

	target, ok := r.findByIdentity(name, birthDate)
	if !ok {
		return ErrAccountNotFound
	}
	idx, ok := ResolveQuestionIndex(target.RecoveryQA)
	if !ok {
		return ErrNoRecoveryQuestion
	}

	r.targetEmail = target.Email
	r.questionIndex = idx
	r.step = StepAnswer
	return nil
}

// VerifyAnswer checks the supplied answer against the identified record.
// The record is re-read by email and its question index re-resolved first:
// if the record vanished (ErrAccountLost) or its question drifted from the
// one shown (ErrQuestionMismatch), the flow is forced back to StepIdentify
// so the user cannot answer a stale question. A wrong answer
// (ErrAnswerIncorrect) stays in StepAnswer for retry. On success the
// resolver moves to StepResult with the account email revealed.
func (r *Resolver) VerifyAnswer(answer string) error {
	if r.step != StepAnswer {
		return ErrNotInStep
	}

	target, ok := r.findByEmail(r.targetEmail)
	if !ok {
		r.backToIdentify()
		return ErrAccountLost
	}

	idx, ok := ResolveQuestionIndex(target.RecoveryQA)
	if !ok || idx != r.questionIndex {
		r.backToIdentify()
		return ErrQuestionMismatch
	}

	if !answerMatches(target.RecoveryQA, answer) {
		return ErrAnswerIncorrect
	}

	r.revealedEmail = target.Email
	r.step = StepResult
	return nil
}

// Retry abandons the answer step but preserves the identify inputs, so the
// user can correct a typo in name or birth date without retyping both.
func (r *Resolver) Retry() {
	r.backToIdentify()
}

// Restart clears everything, including the identify inputs. A subsequent
// Identify behaves as if no prior flow occurred.
func (r *Resolver) Restart() {
	r.backToIdentify()
	r.name = ""
	r.birthDate = ""
}

func (r *Resolver) backToIdentify() {
	r.step = StepIdentify
	r.questionIndex = 0
	r.targetEmail = ""
	r.revealedEmail = ""
}

// findByIdentity returns the first record whose normalized name and exact
// birth date match. First-in-slot-order wins when several records share the
// pair; that tie-break mirrors the signup slot's historical behavior and is
// deliberately not "fixed" here.
func (r *Resolver) findByIdentity(name, birthDate string) (domain.UserRecord, bool) {
	want := normalize(name)
	for _, u := range r.store.ReadUsers() {
		if normalize(u.Name) == want && u.BirthDate == birthDate {
			return u, true
		}
	}
	return domain.UserRecord{}, false
}

func (r *Resolver) findByEmail(email string) (domain.UserRecord, bool) {
	want := normalize(email)
	for _, u := range r.store.ReadUsers() {
		if normalize(u.Email) == want {
			return u, true
		}
	}
	return domain.UserRecord{}, false
}

// answerMatches compares the supplied answer with the stored secret.
// Records written by current signups carry a bcrypt hash of the normalized
// answer; legacy records carry plaintext and are compared normalized.
func answerMatches(qa domain.RecoveryQA, answer string) bool {
	got := normalize(answer)
	if qa.AnswerHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(qa.AnswerHash), []byte(got)) == nil
	}
	return got != "" && got == normalize(qa.Answer)
}

// HashAnswer produces the stored form of a recovery answer for slot
// writers. Exposed here so the hashing scheme stays in one place.
func HashAnswer(answer string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(normalize(answer)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
