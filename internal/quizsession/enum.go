package quizsession

type State string

const (
	StateIdle      State = "IDLE"
	StatePresented State = "PRESENTED"
	StateScored    State = "SCORED"
)

type AnswerOutcome string

const (
	OutcomeCorrect    AnswerOutcome = "CORRECT"
	OutcomeIncorrect  AnswerOutcome = "INCORRECT"
	OutcomeUnanswered AnswerOutcome = "UNANSWERED"
)

type FeedbackTier string

const (
	TierPerfect  FeedbackTier = "PERFECT"
	TierGreat    FeedbackTier = "GREAT"
	TierGood     FeedbackTier = "GOOD"
	TierPractice FeedbackTier = "PRACTICE"
)
