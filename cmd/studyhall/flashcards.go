package main

import (
	"fmt"

	"studyhall"
)

// Run executes the flashcards command.
func (c *FlashcardsCmd) Run(deps *Dependencies) error {
	content, err := loadContent(deps, c.Source)
	if err != nil {
		return err
	}

	result, err := deps.Generator.Flashcards(deps.Ctx, content.Text)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studyhall.ErrorMessage(err))
		return err
	}

	switch result.Kind {
	case studyhall.ResultParsed:
		c.render(deps, result.Set)
		return nil
	case studyhall.ResultRaw:
		fmt.Fprintln(deps.Stderr, "The reply could not be parsed into flashcards; showing it as-is.")
		fmt.Fprintln(deps.Stdout, result.Raw)
		return nil
	default:
		fmt.Fprintln(deps.Stderr, "error: no flashcards could be generated")
		return studyhall.Errorf(studyhall.EUNAVAILABLE, "no flashcards could be generated")
	}
}

func (c *FlashcardsCmd) render(deps *Dependencies, set *studyhall.FlashcardSet) {
	for i, card := range set.Flashcards {
		fmt.Fprintf(deps.Stdout, "%d. %s\n", i+1, card.Front)
		if !c.Reveal {
			continue
		}
		back := card.Back
		if back == "" {
			back = "(no definition provided)"
		}
		fmt.Fprintf(deps.Stdout, "   %s\n", back)
	}
}
