package services

// OutcomeKind tells the presentation layer how to render an Outcome.
type OutcomeKind string

const (
	// OutcomeDone: the command ran, show Message as a notice.
	OutcomeDone OutcomeKind = "DONE"
	// OutcomeConfirm: nothing changed yet, ask the user and repeat the command confirmed.
	OutcomeConfirm OutcomeKind = "CONFIRM"
	// OutcomeDenied: a policy refused the command, show Message as a warning.
	OutcomeDenied OutcomeKind = "DENIED"
)

type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
}

func done(msg string) Outcome    { return Outcome{Kind: OutcomeDone, Message: msg} }
func confirm(msg string) Outcome { return Outcome{Kind: OutcomeConfirm, Message: msg} }
func denied(msg string) Outcome  { return Outcome{Kind: OutcomeDenied, Message: msg} }
