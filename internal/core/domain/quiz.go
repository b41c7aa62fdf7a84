package domain

// QuizQuestion is a single multiple-choice question generated for a
// learner, with four options labelled A-D and exactly one correct
// answer.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}
