package entity

// InterviewType selects the interview script.
type InterviewType string

const (
	InterviewTypeHR        InterviewType = "hr"
	InterviewTypeTechnical InterviewType = "technical"
)

// Title returns the heading shown for the interview type.
func (t InterviewType) Title() string {
	if t == InterviewTypeHR {
		return "HR Interview"
	}

	return "Technical Interview"
}

// InterviewQuestion is one scripted question of a server-issued session.
type InterviewQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// InterviewSession is the server-issued session mirrored by the client.
type InterviewSession struct {
	ID        string               `json:"id"`
	Type      InterviewType        `json:"type"`
	Questions []*InterviewQuestion `json:"questions"`
	Completed bool                 `json:"completed"`
}

// InterviewResponse is one answered question, sent to the server and mirrored locally.
type InterviewResponse struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// InterviewState is the phase of the local interview flow.
type InterviewState string

const (
	InterviewStateNotStarted InterviewState = "not_started"
	InterviewStateInProgress InterviewState = "in_progress"
	InterviewStateCompleted  InterviewState = "completed"
)
