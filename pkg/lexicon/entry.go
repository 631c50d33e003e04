// Package lexicon holds the verb entry model shared by the decoder, the index and the server.
package lexicon

import "slices"

// Tense of an inflected form.
type Tense string

const (
	Past    Tense = "past"
	Present Tense = "present"
	Future  Tense = "future"
)

// Person of an inflected form. PersonAll marks forms that do not vary by person.
type Person string

const (
	First     Person = "1st"
	Second    Person = "2nd"
	Third     Person = "3rd"
	PersonAll Person = "all"
)

// Number of an inflected form.
type Number string

const (
	Singular Number = "singular"
	Plural   Number = "plural"
)

// Gender of an inflected form. GenderAll marks forms shared by both genders.
type Gender string

const (
	Masculine Gender = "m"
	Feminine  Gender = "f"
	GenderAll Gender = "all"
)

// InflectedForm is one conjugation slot of a verb.
type InflectedForm struct {
	Tense          Tense  `json:"tense" msgpack:"tense"`
	Person         Person `json:"person" msgpack:"person"`
	Number         Number `json:"number" msgpack:"number"`
	Gender         Gender `json:"gender" msgpack:"gender"`
	Form           string `json:"form" msgpack:"form"`
	FormNormalized string `json:"form_normalized" msgpack:"form_normalized"`
	Transcription  string `json:"transcription" msgpack:"transcription"`
	Meaning        string `json:"meaning" msgpack:"meaning"`
	// FormVowelled is the niqqud-marked surface; empty when the source has none.
	FormVowelled string `json:"form_vowelled,omitempty" msgpack:"form_vowelled,omitempty"`
}

// WordEntry is a verb lexeme with its full conjugation table.
type WordEntry struct {
	// ID is the globally unique key every index refers to.
	ID             string          `json:"id" msgpack:"id"`
	Word           string          `json:"word" msgpack:"word"`
	Translation    string          `json:"translation" msgpack:"translation"`
	WordNormalized string          `json:"word_normalized" msgpack:"word_normalized"`
	Transcription  string          `json:"transcription" msgpack:"transcription"`
	Root           []string        `json:"root" msgpack:"root"`
	Forms          []InflectedForm `json:"forms" msgpack:"forms"`
	Binyan         Binyan          `json:"binyan" msgpack:"binyan"`
	// Passive is nil for verbs without a passive conjugation.
	Passive       []InflectedForm `json:"passive,omitempty" msgpack:"passive,omitempty"`
	PassiveBinyan Binyan          `json:"passive_binyan,omitempty" msgpack:"passive_binyan,omitempty"`
}

// HasPassive reports whether the entry carries a passive conjugation.
func (w WordEntry) HasPassive() bool {
	return w.Passive != nil
}

// Clone returns a deep copy of w. Slices of the copy never alias w's.
func (w WordEntry) Clone() WordEntry {
	c := w
	c.Root = slices.Clone(w.Root)
	c.Forms = slices.Clone(w.Forms)
	if w.Passive != nil {
		c.Passive = slices.Clone(w.Passive)
	}
	return c
}

// MatchKind says which part of an entry a query matched.
type MatchKind int

const (
	// Infinitive is the headword itself.
	Infinitive MatchKind = iota
	// Active is a position in WordEntry.Forms.
	Active
	// Passive is a position in WordEntry.Passive.
	Passive
)

func (k MatchKind) String() string {
	switch k {
	case Infinitive:
		return "infinitive"
	case Active:
		return "active"
	case Passive:
		return "passive"
	default:
		return "unknown"
	}
}

// MatchedForm locates one matching slot. Index is 0 for Infinitive.
type MatchedForm struct {
	Index int       `json:"index" msgpack:"i"`
	Kind  MatchKind `json:"kind" msgpack:"k"`
}

// SearchResult pairs an entry with the slots the query matched.
type SearchResult struct {
	Word          WordEntry     `json:"word" msgpack:"w"`
	MatchingForms []MatchedForm `json:"matching_forms" msgpack:"m"`
}
