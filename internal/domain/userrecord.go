package domain

// RecoveryQA is the security question/answer sub-record of a locally
// registered account. Current signups store QuestionIndex plus a bcrypt
// AnswerHash; historical records may instead carry a free-text legacy
// Question key and a plaintext Answer. The account-recovery flow accepts
// both shapes.
type RecoveryQA struct {
	QuestionIndex *int   `json:"questionIndex,omitempty"`
	Question      string `json:"question,omitempty"`
	Answer        string `json:"answer,omitempty"`
	AnswerHash    string `json:"answerHash,omitempty"`
}

// UserRecord is one registered account in the local user slot. The slot's
// schema is owned by the signup flow; the recovery resolver only reads it.
type UserRecord struct {
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	BirthDate  string     `json:"birthDate"`
	RecoveryQA RecoveryQA `json:"recoveryQA"`
}
