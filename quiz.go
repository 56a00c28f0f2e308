package studyhall

import (
	"github.com/google/uuid"
)

// DefaultQuizTitle is used when the model reply carries no title.
const DefaultQuizTitle = "Generated Quiz"

// QuizQuestion is one multiple-choice question. CorrectAnswer is the
// full text of the right option; a reply may omit it, in which case
// grading marks the question incorrect rather than failing the render.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Quiz is an ordered set of multiple-choice questions.
type Quiz struct {
	Title     string         `json:"quiz_title"`
	Questions []QuizQuestion `json:"questions"`
}

// NormalizeQuiz converts a decoded JSON value into a Quiz. It accepts
// a mapping with "questions" and "quiz_title" fields or a bare
// sequence of questions; each question may omit explanation (defaults
// to "") and correct_answer (left empty) without failing. Returns
// false when the value holds no question sequence at all.
func NormalizeQuiz(v any) (*Quiz, bool) {
	quiz := &Quiz{Title: DefaultQuizTitle}

	var items []any
	switch val := v.(type) {
	case map[string]any:
		if title, ok := firstField(val, "quiz_title", "title"); ok {
			quiz.Title = title
		}
		questions, ok := val["questions"].([]any)
		if !ok {
			return nil, false
		}
		items = questions
	case []any:
		items = val
	default:
		return nil, false
	}

	for _, item := range items {
		q, ok := normalizeQuestion(item)
		if !ok {
			continue
		}
		quiz.Questions = append(quiz.Questions, q)
	}

	return quiz, true
}

func normalizeQuestion(v any) (QuizQuestion, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		// A non-object question still renders as its stringified form.
		if s := stringValue(v); s != "" {
			return QuizQuestion{Question: s}, true
		}
		return QuizQuestion{}, false
	}

	q := QuizQuestion{
		Options:     stringSlice(m["options"]),
		Explanation: stringValue(m["explanation"]),
	}
	if text, ok := firstField(m, "question"); ok {
		q.Question = text
	} else {
		q.Question = stringValue(m)
	}
	if answer, ok := firstField(m, "correct_answer", "answer"); ok {
		q.CorrectAnswer = answer
	}
	return q, true
}

// QuizSession holds the ephemeral state of one quiz attempt: the
// generated quiz (or its raw fallback), per-question selections, and
// the grading flag. Grading is a one-way transition; the only way back
// is a new session created from a fresh generation.
type QuizSession struct {
	ID         string
	Result     *QuizResult
	Selections map[int]string
	Graded     bool
}

// NewQuizSession starts a session for a freshly generated quiz. Any
// prior session is simply discarded by the caller, which resets the
// graded flag and all selections.
func NewQuizSession(result *QuizResult) *QuizSession {
	return &QuizSession{
		ID:         uuid.NewString(),
		Result:     result,
		Selections: make(map[int]string),
	}
}

// Questions returns the renderable question list, which is empty for
// raw and unparseable results.
func (s *QuizSession) Questions() []QuizQuestion {
	if s.Result == nil || s.Result.Kind != ResultParsed || s.Result.Quiz == nil {
		return nil
	}
	return s.Result.Quiz.Questions
}

// Select records the chosen option for the question at index i. It
// fails once the session is graded or when the index is out of range.
func (s *QuizSession) Select(i int, option string) error {
	if s.Graded {
		return Errorf(EINVALID, "quiz already graded; generate a new quiz to retry")
	}
	if i < 0 || i >= len(s.Questions()) {
		return Errorf(EINVALID, "no question at index %d", i)
	}
	s.Selections[i] = option
	return nil
}

// Submit grades the session. Submitting twice is an error.
func (s *QuizSession) Submit() error {
	if s.Graded {
		return Errorf(EINVALID, "quiz already graded")
	}
	s.Graded = true
	return nil
}

// Grade reports the outcome for the question at index i. Correctness
// is exact string equality of the recorded selection against the
// question's correct answer. Only valid after Submit.
func (s *QuizSession) Grade(i int) (correct bool, explanation string, err error) {
	if !s.Graded {
		return false, "", Errorf(EINVALID, "quiz has not been submitted")
	}
	questions := s.Questions()
	if i < 0 || i >= len(questions) {
		return false, "", Errorf(EINVALID, "no question at index %d", i)
	}
	q := questions[i]
	selection, answered := s.Selections[i]
	return answered && q.CorrectAnswer != "" && selection == q.CorrectAnswer, q.Explanation, nil
}

// Score returns the number of correct selections and the question
// count. Before grading both counts are reported but correct is 0.
func (s *QuizSession) Score() (correct, total int) {
	questions := s.Questions()
	total = len(questions)
	if !s.Graded {
		return 0, total
	}
	for i, q := range questions {
		if selection, ok := s.Selections[i]; ok && q.CorrectAnswer != "" && selection == q.CorrectAnswer {
			correct++
		}
	}
	return correct, total
}
