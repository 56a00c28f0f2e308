package studyhall

import "encoding/json"

// Flashcard is one term/definition pair.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// FlashcardSet is an ordered deck of flashcards.
type FlashcardSet struct {
	Flashcards []Flashcard `json:"flashcards"`
}

// NormalizeFlashcards converts any reply shape the model has been seen
// to produce into a flat deck. The chain, in order: unwrap a
// {"flashcards": ...} wrapper; JSON-parse a bare string (an unparseable
// string becomes a single opaque card); coerce a lone value into a
// one-element sequence; per card resolve front/back from named fields,
// then from a positional pair, then by stringifying the whole card.
// The function is idempotent on already-normalized input.
func NormalizeFlashcards(v any) []Flashcard {
	switch typed := v.(type) {
	case nil:
		return nil
	case []Flashcard:
		return typed
	case FlashcardSet:
		return typed.Flashcards
	case *FlashcardSet:
		return typed.Flashcards
	}

	if wrapper, ok := v.(map[string]any); ok {
		if inner, ok := wrapper["flashcards"]; ok {
			v = inner
		}
	}

	if s, ok := v.(string); ok {
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			return []Flashcard{{Front: s}}
		}
		v = parsed
	}

	items, ok := v.([]any)
	if !ok {
		items = []any{v}
	}

	cards := make([]Flashcard, 0, len(items))
	for _, item := range items {
		cards = append(cards, normalizeCard(item))
	}
	return cards
}

func normalizeCard(v any) Flashcard {
	switch card := v.(type) {
	case map[string]any:
		front, hasFront := firstField(card, "front", "term", "question")
		back, _ := firstField(card, "back", "definition", "answer")
		if !hasFront {
			return Flashcard{Front: stringValue(card), Back: back}
		}
		return Flashcard{Front: front, Back: back}
	case []any:
		// Positional pair: element 0 is the front, element 1 the back.
		if len(card) > 0 {
			f := Flashcard{Front: stringValue(card[0])}
			if len(card) > 1 {
				f.Back = stringValue(card[1])
			}
			return f
		}
		return Flashcard{Front: stringValue(card)}
	default:
		return Flashcard{Front: stringValue(v)}
	}
}
