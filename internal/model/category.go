package model

// Locale identifies a supported display language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleDE Locale = "de"
)

// LocalizedText maps a locale to display text.
type LocalizedText map[Locale]string

// Answer is one selectable choice attached to a question. Immutable once
// attached.
type Answer struct {
	ID      string        `json:"id" bson:"id"`
	Text    LocalizedText `json:"text" bson:"text"`
	Correct bool          `json:"correct" bson:"correct"`
}

// Question is a board question worth a fixed point value.
type Question struct {
	ID      string        `json:"id" bson:"id"`
	Text    LocalizedText `json:"text" bson:"text"`
	Value   int           `json:"value" bson:"value"`
	Answers []Answer      `json:"answers" bson:"answers"`
}

// CorrectAnswerIDs returns the canonical right-answer identifier set.
func (q *Question) CorrectAnswerIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, a := range q.Answers {
		if a.Correct {
			ids[a.ID] = struct{}{}
		}
	}
	return ids
}

// Category groups questions under a localized display name.
type Category struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Name      LocalizedText `json:"name" bson:"name"`
	Questions []Question    `json:"questions" bson:"questions"`
}

// NameList holds candidate names index-aligned across locales.
type NameList struct {
	English []string `json:"en"`
	German  []string `json:"de"`
}

// Len reports the number of candidates in the pool.
func (l NameList) Len() int { return len(l.English) }

// At returns the localized texts for one candidate. The German list may be
// shorter than the English one when the source lacks a translation; the
// English name is used as fallback.
func (l NameList) At(i int) LocalizedText {
	t := LocalizedText{LocaleEN: l.English[i], LocaleDE: l.English[i]}
	if i < len(l.German) {
		t[LocaleDE] = l.German[i]
	}
	return t
}

// TopicWorks is a read-only snapshot from the content source: a topic's
// localized display name plus works related and unrelated to it.
type TopicWorks struct {
	Name      LocalizedText `json:"name"`
	Related   NameList      `json:"related"`
	Unrelated NameList      `json:"unrelated"`
}
