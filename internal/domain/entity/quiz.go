package entity

// QuizCategory selects a question bank.
type QuizCategory string

const (
	QuizCategoryAptitude QuizCategory = "aptitude"
	QuizCategoryCoding   QuizCategory = "coding"
)

// Title returns the heading shown for the category.
func (c QuizCategory) Title() string {
	switch c {
	case QuizCategoryAptitude:
		return "Aptitude Test"
	case QuizCategoryCoding:
		return "Coding Practice"
	default:
		return string(c)
	}
}

// QuizQuestion is one served question. Aptitude questions carry Options;
// coding questions carry Language, Difficulty and SampleAnswer.
type QuizQuestion struct {
	ID            string   `json:"id,omitempty"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	Language      string   `json:"language,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	SampleAnswer  string   `json:"sample_answer,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
}

// QuizState is the phase of a local quiz attempt.
type QuizState string

const (
	QuizStateIdle       QuizState = "idle"
	QuizStateInProgress QuizState = "in_progress"
	QuizStateFinished   QuizState = "finished"
)

// QuizResult summarises a finished (or running) attempt.
type QuizResult struct {
	Category   QuizCategory `json:"category"`
	Score      int          `json:"score"`
	Total      int          `json:"total"`
	Percentage int          `json:"percentage"`
}
