package studyhall_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhall"
)

func parsedQuizResult(questions ...studyhall.QuizQuestion) *studyhall.QuizResult {
	return &studyhall.QuizResult{
		Kind: studyhall.ResultParsed,
		Quiz: &studyhall.Quiz{Title: "Capitals", Questions: questions},
	}
}

func capitalQuestion() studyhall.QuizQuestion {
	return studyhall.QuizQuestion{
		Question:      "What is the capital of France?",
		Options:       []string{"Paris", "Lyon", "Nice", "Lille"},
		CorrectAnswer: "Paris",
		Explanation:   "Paris has been the capital since 987.",
	}
}

func TestNormalizeQuiz_MappingWithTitle(t *testing.T) {
	t.Parallel()

	var v any
	err := json.Unmarshal([]byte(`{
		"quiz_title": "T",
		"questions": [
			{"question": "Q1", "options": ["a", "b", "c", "d"], "correct_answer": "a", "explanation": "because"}
		]
	}`), &v)
	require.NoError(t, err)

	quiz, ok := studyhall.NormalizeQuiz(v)

	require.True(t, ok)
	assert.Equal(t, "T", quiz.Title)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, "Q1", quiz.Questions[0].Question)
	assert.Equal(t, []string{"a", "b", "c", "d"}, quiz.Questions[0].Options)
	assert.Equal(t, "a", quiz.Questions[0].CorrectAnswer)
}

func TestNormalizeQuiz_BareSequence(t *testing.T) {
	t.Parallel()

	var v any
	err := json.Unmarshal([]byte(`[{"question": "Q1", "options": ["a", "b"]}]`), &v)
	require.NoError(t, err)

	quiz, ok := studyhall.NormalizeQuiz(v)

	require.True(t, ok)
	assert.Equal(t, studyhall.DefaultQuizTitle, quiz.Title)
	require.Len(t, quiz.Questions, 1)
}

func TestNormalizeQuiz_MissingFieldsDefaultInsteadOfFailing(t *testing.T) {
	t.Parallel()

	var v any
	err := json.Unmarshal([]byte(`[{"question": "Q1", "options": ["a", "b"]}]`), &v)
	require.NoError(t, err)

	quiz, ok := studyhall.NormalizeQuiz(v)

	require.True(t, ok)
	assert.Empty(t, quiz.Questions[0].Explanation)
	assert.Empty(t, quiz.Questions[0].CorrectAnswer)
}

func TestNormalizeQuiz_EmptyQuestions(t *testing.T) {
	t.Parallel()

	var v any
	err := json.Unmarshal([]byte(`{"quiz_title":"T","questions":[]}`), &v)
	require.NoError(t, err)

	quiz, ok := studyhall.NormalizeQuiz(v)

	require.True(t, ok)
	assert.Equal(t, "T", quiz.Title)
	assert.Empty(t, quiz.Questions)
}

func TestNormalizeQuiz_RejectsNonQuizValue(t *testing.T) {
	t.Parallel()

	_, ok := studyhall.NormalizeQuiz(42.0)

	assert.False(t, ok)
}

func TestQuizSession_GradingIsDeterministic(t *testing.T) {
	t.Parallel()

	q2 := studyhall.QuizQuestion{
		Question:      "2+2?",
		Options:       []string{"3", "4", "5", "6"},
		CorrectAnswer: "4",
	}
	session := studyhall.NewQuizSession(parsedQuizResult(capitalQuestion(), q2))

	require.NoError(t, session.Select(0, "Paris"))
	require.NoError(t, session.Select(1, "5"))
	require.NoError(t, session.Submit())

	correct, total := session.Score()
	assert.Equal(t, 1, correct)
	assert.Equal(t, 2, total)

	ok, explanation, err := session.Grade(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Paris has been the capital since 987.", explanation)

	ok, _, err = session.Grade(1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuizSession_GradedIsOneWay(t *testing.T) {
	t.Parallel()

	session := studyhall.NewQuizSession(parsedQuizResult(capitalQuestion()))
	require.NoError(t, session.Submit())

	err := session.Select(0, "Paris")
	assert.Equal(t, studyhall.EINVALID, studyhall.ErrorCode(err))

	err = session.Submit()
	assert.Equal(t, studyhall.EINVALID, studyhall.ErrorCode(err))
}

func TestQuizSession_RegenerationResetsState(t *testing.T) {
	t.Parallel()

	first := studyhall.NewQuizSession(parsedQuizResult(capitalQuestion()))
	require.NoError(t, first.Select(0, "Paris"))
	require.NoError(t, first.Submit())

	second := studyhall.NewQuizSession(parsedQuizResult(capitalQuestion()))

	assert.False(t, second.Graded)
	assert.Empty(t, second.Selections)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestQuizSession_UnansweredQuestionIsIncorrect(t *testing.T) {
	t.Parallel()

	session := studyhall.NewQuizSession(parsedQuizResult(capitalQuestion()))
	require.NoError(t, session.Submit())

	correct, total := session.Score()
	assert.Equal(t, 0, correct)
	assert.Equal(t, 1, total)
}

func TestQuizSession_MissingCorrectAnswerNeverMatches(t *testing.T) {
	t.Parallel()

	q := studyhall.QuizQuestion{Question: "Q", Options: []string{"", "x"}}
	session := studyhall.NewQuizSession(parsedQuizResult(q))
	require.NoError(t, session.Select(0, ""))
	require.NoError(t, session.Submit())

	correct, _ := session.Score()
	assert.Zero(t, correct)
}

func TestQuizSession_RawResultHasNoQuestions(t *testing.T) {
	t.Parallel()

	session := studyhall.NewQuizSession(&studyhall.QuizResult{
		Kind: studyhall.ResultRaw,
		Raw:  "not json",
	})

	assert.Empty(t, session.Questions())
	err := session.Select(0, "a")
	assert.Equal(t, studyhall.EINVALID, studyhall.ErrorCode(err))
}

func TestQuizSession_GradeBeforeSubmitFails(t *testing.T) {
	t.Parallel()

	session := studyhall.NewQuizSession(parsedQuizResult(capitalQuestion()))

	_, _, err := session.Grade(0)
	assert.Equal(t, studyhall.EINVALID, studyhall.ErrorCode(err))
}
