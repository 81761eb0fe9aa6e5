// model/content.go
package model

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

// LocalizedString holds the English and Japanese text of a catalog field.
type LocalizedString struct {
	En string `json:"en" validate:"required"`
	Ja string `json:"ja" validate:"required"`
}

// Get returns the text for lang, falling back to English.
func (s LocalizedString) Get(lang string) string {
	if lang == shared.LanguageJapanese && s.Ja != "" {
		return s.Ja
	}
	return s.En
}

// Question is static reference data and is never mutated at runtime.
type Question struct {
	ID               string            `json:"id" validate:"required"`
	Category         string            `json:"category" validate:"required,category"`
	Difficulty       string            `json:"difficulty" validate:"required,difficulty"`
	Type             string            `json:"type" validate:"required,oneof=multiple-choice true-false scenario drag-drop"`
	Question         LocalizedString   `json:"question"`
	Options          []LocalizedString `json:"options,omitempty" validate:"dive"`
	CorrectAnswer    Answer            `json:"correct_answer"`
	Explanation      LocalizedString   `json:"explanation"`
	UseCase          LocalizedString   `json:"use_case"`
	CustomerScenario *LocalizedString  `json:"customer_scenario,omitempty"`
	Points           int               `json:"points" validate:"gte=0"`
	Tags             []string          `json:"tags"`
}

// IsCorrect reports whether answer strictly matches the correct answer.
func (q *Question) IsCorrect(answer Answer) bool {
	return q.CorrectAnswer.Equal(answer)
}

// Answer is either the index of a chosen option or a free-form value.
// The zero value is option index 0.
type Answer struct {
	index  int
	text   string
	isText bool
}

func IndexAnswer(index int) Answer {
	return Answer{index: index}
}

func TextAnswer(text string) Answer {
	return Answer{text: text, isText: true}
}

// PlaceholderAnswer stands in when the actual wrong answer is not tracked.
func PlaceholderAnswer() Answer {
	return TextAnswer("")
}

func (a Answer) Index() (int, bool) {
	return a.index, !a.isText
}

func (a Answer) Text() (string, bool) {
	return a.text, a.isText
}

// Equal compares kind and value; index 1 never equals text "1".
func (a Answer) Equal(other Answer) bool {
	return a == other
}

func (a Answer) String() string {
	if a.isText {
		return a.text
	}
	return strconv.Itoa(a.index)
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.isText {
		return shared.Marshal(a.text)
	}
	return []byte(strconv.Itoa(a.index)), nil
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*a = PlaceholderAnswer()
		return nil
	case strings.HasPrefix(raw, `"`):
		var text string
		if err := shared.Unmarshal([]byte(raw), &text); err != nil {
			return err
		}
		*a = TextAnswer(text)
		return nil
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		return errors.New("answer must be an option index or a string")
	}
	*a = IndexAnswer(index)
	return nil
}
