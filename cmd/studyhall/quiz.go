package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"studyhall"
)

// Run executes the quiz command.
func (c *QuizCmd) Run(deps *Dependencies) error {
	content, err := loadContent(deps, c.Source)
	if err != nil {
		return err
	}

	result, err := deps.Generator.Quiz(deps.Ctx, content.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studyhall.ErrorMessage(err))
		return err
	}

	switch result.Kind {
	case studyhall.ResultParsed:
		return c.take(deps, studyhall.NewQuizSession(result))
	case studyhall.ResultRaw:
		fmt.Fprintln(deps.Stderr, "The reply could not be parsed into a quiz; showing it as-is.")
		fmt.Fprintln(deps.Stdout, result.Raw)
		return nil
	default:
		fmt.Fprintln(deps.Stderr, "error: no quiz could be generated")
		return studyhall.Errorf(studyhall.EUNAVAILABLE, "no quiz could be generated")
	}
}

// take walks the session through selection, submission, and grading.
func (c *QuizCmd) take(deps *Dependencies, session *studyhall.QuizSession) error {
	questions := session.Questions()
	if len(questions) == 0 {
		fmt.Fprintln(deps.Stderr, "error: the generated quiz has no questions")
		return studyhall.Errorf(studyhall.EUNAVAILABLE, "the generated quiz has no questions")
	}

	fmt.Fprintf(deps.Stdout, "%s\n\n", session.Result.Quiz.Title)

	scanner := bufio.NewScanner(deps.Stdin)
	for i, q := range questions {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, q.Question)
		for j, option := range q.Options {
			fmt.Fprintf(deps.Stdout, "   %s) %s\n", optionLabel(j), option)
		}
		if len(q.Options) == 0 {
			continue
		}

		option, err := c.answer(deps, scanner, i, q)
		if err != nil {
			return err
		}
		if option != "" {
			if err := session.Select(i, option); err != nil {
				return err
			}
		}
	}

	if err := session.Submit(); err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout)
	for i, q := range questions {
		correct, explanation, err := session.Grade(i)
		if err != nil {
			return err
		}
		if correct {
			fmt.Fprintf(deps.Stdout, "%d. Correct\n", i+1)
		} else {
			fmt.Fprintf(deps.Stdout, "%d. Incorrect (correct answer: %s)\n", i+1, q.CorrectAnswer)
		}
		if explanation != "" {
			fmt.Fprintf(deps.Stdout, "   %s\n", explanation)
		}
	}

	correct, total := session.Score()
	fmt.Fprintf(deps.Stdout, "\nScore: %d/%d\n", correct, total)
	return nil
}

// answer resolves the selection for question i, either from the
// --answer flags or by prompting on stdin. An unanswerable question
// (flag run out, stdin closed) is left unanswered and grades as
// incorrect.
func (c *QuizCmd) answer(deps *Dependencies, scanner *bufio.Scanner, i int, q studyhall.QuizQuestion) (string, error) {
	if len(c.Answer) > 0 {
		if i >= len(c.Answer) {
			return "", nil
		}
		option, ok := resolveOption(c.Answer[i], q.Options)
		if !ok {
			return "", studyhall.Errorf(studyhall.EINVALID, "answer %q does not match an option of question %d", c.Answer[i], i+1)
		}
		return option, nil
	}

	for {
		fmt.Fprintf(deps.Stdout, "Your answer (%s-%s): ", optionLabel(0), optionLabel(len(q.Options)-1))
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return "", nil
		}
		option, ok := resolveOption(scanner.Text(), q.Options)
		if ok {
			return option, nil
		}
		fmt.Fprintf(deps.Stderr, "Unrecognized answer %q, try again.\n", scanner.Text())
	}
}

// resolveOption maps an answer token to the full option text. Accepted
// forms: option letter, 1-based option number, or the option verbatim.
func resolveOption(token string, options []string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	if len(token) == 1 {
		if i := int(strings.ToUpper(token)[0]) - 'A'; i >= 0 && i < len(options) {
			return options[i], true
		}
	}
	if n, err := strconv.Atoi(token); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}
	for _, option := range options {
		if strings.EqualFold(token, option) {
			return option, true
		}
	}
	return "", false
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}
