package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narabid/bidassist/internal/domain"
)

// memStore lets tests mutate the record list between resolver steps, the
// same way another process could rewrite the slot mid-flow.
type memStore struct {
	users []domain.UserRecord
}

func (m *memStore) ReadUsers() []domain.UserRecord { return m.users }

func intp(v int) *int { return &v }

func kimRecord() domain.UserRecord {
	return domain.UserRecord{
		Email:     "kim@example.com",
		Name:      "Kim",
		BirthDate: "1990-01-01",
		RecoveryQA: domain.RecoveryQA{
			QuestionIndex: intp(2),
			Answer:        "Seoul",
		},
	}
}

func setupResolver(users ...domain.UserRecord) (*Resolver, *memStore) {
	store := &memStore{users: users}
	return New(store), store
}

func TestIdentify_CaseAndWhitespaceInsensitiveName(t *testing.T) {
	r, _ := setupResolver(kimRecord())

	require.NoError(t, r.Identify("  kim ", "1990-01-01"))
	assert.Equal(t, StepAnswer, r.Step())
	assert.Equal(t, 2, r.QuestionIndex())
	assert.Equal(t, SecurityQuestions[2], r.Question())
}

func TestIdentify_BirthDateIsExactMatch(t *testing.T) {
	r, _ := setupResolver(kimRecord())

	err := r.Identify("Kim", "1990-01-02")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Equal(t, StepIdentify, r.Step())
}

func TestIdentify_FirstMatchInSlotOrderWins(t *testing.T) {
	first := kimRecord()
	second := kimRecord()
	second.Email = "other-kim@example.com"
	second.RecoveryQA.QuestionIndex = intp(0)
	r, _ := setupResolver(first, second)

	require.NoError(t, r.Identify("Kim", "1990-01-01"))
	require.NoError(t, r.VerifyAnswer("seoul"))
	assert.Equal(t, "kim@example.com", r.RevealedEmail())
}

func TestIdentify_NoRecoveryQuestionConfigured(t *testing.T) {
	rec := kimRecord()
	rec.RecoveryQA = domain.RecoveryQA{Answer: "Seoul"}
	r, _ := setupResolver(rec)

	err := r.Identify("Kim", "1990-01-01")
	assert.ErrorIs(t, err, ErrNoRecoveryQuestion)
	assert.Equal(t, StepIdentify, r.Step())
}

func TestIdentify_OutOfRangeIndexAndUnknownLegacyKey(t *testing.T) {
	rec := kimRecord()
	rec.RecoveryQA = domain.RecoveryQA{
		QuestionIndex: intp(99),
		Question:      "mothers_maiden_name",
		Answer:        "Seoul",
	}
	r, _ := setupResolver(rec)

	err := r.Identify("Kim", "1990-01-01")
	assert.ErrorIs(t, err, ErrNoRecoveryQuestion)
}

func TestVerifyAnswer_CaseInsensitiveMatchRevealsEmail(t *testing.T) {
	r, _ := setupResolver(kimRecord())
	require.NoError(t, r.Identify("kim", "1990-01-01"))

	require.NoError(t, r.VerifyAnswer("  seoul "))
	assert.Equal(t, StepResult, r.Step())
	assert.Equal(t, "kim@example.com", r.RevealedEmail())
}

func TestVerifyAnswer_WrongAnswerStaysInAnswerStep(t *testing.T) {
	r, _ := setupResolver(kimRecord())
	require.NoError(t, r.Identify("Kim", "1990-01-01"))

	err := r.VerifyAnswer("Busan")
	assert.ErrorIs(t, err, ErrAnswerIncorrect)
	assert.Equal(t, StepAnswer, r.Step())

	// Retrying with the right answer still works.
	require.NoError(t, r.VerifyAnswer("Seoul"))
	assert.Equal(t, StepResult, r.Step())
}

func TestVerifyAnswer_RecordVanishedMidFlow(t *testing.T) {
	r, store := setupResolver(kimRecord())
	require.NoError(t, r.Identify("Kim", "1990-01-01"))

	store.users = nil

	err := r.VerifyAnswer("Seoul")
	assert.ErrorIs(t, err, ErrAccountLost)
	assert.Equal(t, StepIdentify, r.Step())
}

func TestVerifyAnswer_QuestionDriftedMidFlow(t *testing.T) {
	r, store := setupResolver(kimRecord())
	require.NoError(t, r.Identify("Kim", "1990-01-01"))

	// Another writer changed the record's question between steps.
	store.users[0].RecoveryQA.QuestionIndex = intp(0)

	err := r.VerifyAnswer("Seoul")
	assert.ErrorIs(t, err, ErrQuestionMismatch)
	assert.Equal(t, StepIdentify, r.Step())
}

func TestVerifyAnswer_QuestionLostMidFlow(t *testing.T) {
	r, store := setupResolver(kimRecord())
	require.NoError(t, r.Identify("Kim", "1990-01-01"))

	store.users[0].RecoveryQA = domain.RecoveryQA{Answer: "Seoul"}

	err := r.VerifyAnswer("Seoul")
	assert.ErrorIs(t, err, ErrQuestionMismatch)
	assert.Equal(t, StepIdentify, r.Step())
}

func TestVerifyAnswer_HashedRecord(t *testing.T) {
	hash, err := HashAnswer("Seoul")
	require.NoError(t, err)

	rec := kimRecord()
	rec.RecoveryQA.Answer = ""
	rec.RecoveryQA.AnswerHash = hash
	r, _ := setupResolver(rec)

	require.NoError(t, r.Identify("Kim", "1990-01-01"))
	assert.ErrorIs(t, r.VerifyAnswer("Busan"), ErrAnswerIncorrect)
	require.NoError(t, r.VerifyAnswer("SEOUL"))
	assert.Equal(t, "kim@example.com", r.RevealedEmail())
}

func TestVerifyAnswer_EmptyAnswerNeverMatchesEmptyRecord(t *testing.T) {
	rec := kimRecord()
	rec.RecoveryQA.Answer = ""
	r, _ := setupResolver(rec)

	require.NoError(t, r.Identify("Kim", "1990-01-01"))
	assert.ErrorIs(t, r.VerifyAnswer("   "), ErrAnswerIncorrect)
}

func TestRetry_PreservesIdentifyInputs(t *testing.T) {
	r, _ := setupResolver(kimRecord())
	require.NoError(t, r.Identify("Kim", "1990-01-01"))

	r.Retry()
	assert.Equal(t, StepIdentify, r.Step())
	assert.Equal(t, "Kim", r.Name())
	assert.Equal(t, "1990-01-01", r.BirthDate())
	assert.Empty(t, r.RevealedEmail())
}

func TestRestart_FromResultClearsEverything(t *testing.T) {
	r, _ := setupResolver(kimRecord())
	require.NoError(t, r.Identify("Kim", "1990-01-01"))
	require.NoError(t, r.VerifyAnswer("Seoul"))
	require.Equal(t, StepResult, r.Step())

	r.Restart()
	assert.Equal(t, StepIdentify, r.Step())
	assert.Empty(t, r.Name())
	assert.Empty(t, r.BirthDate())
	assert.Empty(t, r.RevealedEmail())

	// Idempotent restart: the next flow behaves like the first.
	require.NoError(t, r.Identify("KIM", "1990-01-01"))
	require.NoError(t, r.VerifyAnswer("seoul"))
	assert.Equal(t, "kim@example.com", r.RevealedEmail())
}

func TestTransitions_RejectedOutsideTheirStep(t *testing.T) {
	r, _ := setupResolver(kimRecord())

	assert.ErrorIs(t, r.VerifyAnswer("Seoul"), ErrNotInStep)

	require.NoError(t, r.Identify("Kim", "1990-01-01"))
	assert.ErrorIs(t, r.Identify("Kim", "1990-01-01"), ErrNotInStep)
}
