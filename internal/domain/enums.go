package domain

// BidStage is the user's pipeline status for a saved bid. The set is closed:
// values outside it are rejected before any remote request is issued.
type BidStage string

const (
	StageInterest  BidStage = "INTEREST"
	StageReview    BidStage = "REVIEW"
	StageDecided   BidStage = "DECIDED"
	StageDocPrep   BidStage = "DOC_PREP"
	StageSubmitted BidStage = "SUBMITTED"
	StageWon       BidStage = "WON"
	StageLost      BidStage = "LOST"
)

// BidStages lists all stages in pipeline order. WON and LOST are outcomes;
// the order of the in-progress stages is product intent, not enforced.
var BidStages = []BidStage{
	StageInterest,
	StageReview,
	StageDecided,
	StageDocPrep,
	StageSubmitted,
	StageWon,
	StageLost,
}

var stageLabels = map[BidStage]string{
	StageInterest:  "Interested",
	StageReview:    "Reviewing",
	StageDecided:   "Decided",
	StageDocPrep:   "Preparing docs",
	StageSubmitted: "Submitted",
	StageWon:       "Won",
	StageLost:      "Lost",
}

// IsValid reports whether s is a member of the closed stage set.
func (s BidStage) IsValid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Label returns the display label for the stage, or the raw value if unknown.
func (s BidStage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}

// Terminal reports whether the stage is an absorbing outcome.
func (s BidStage) Terminal() bool {
	return s == StageWon || s == StageLost
}
