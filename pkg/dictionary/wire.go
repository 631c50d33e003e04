/*
Package dictionary decodes the packed verb dataset into lexicon entries.

The dataset is a single MessagePack map with one key, "words", holding the
list of verb records:

	{"words": [{"url_id": "1-lichtov", "word": "לכתוב", "binyan": 0, "forms": [...]}, ...]}

Grammatical categories travel as small integers:

	tense:  0 past, 1 present, 2 future
	person: 0 1st, 1 2nd, 2 3rd, 3 all
	number: 0 singular, 1 plural
	gender: 0 m, 1 f, 2 all
	binyan: 0 paal, 1 nifal, 2 piel, 3 pual, 4 hifil, 5 hufal, 6 hitpael

Any value outside these ranges makes the whole dataset invalid; Decode never
returns a partial list.
*/
package dictionary

// wireForm is one conjugation slot as stored in the dataset.
type wireForm struct {
	Tense          int32   `msgpack:"tense"`
	Person         int32   `msgpack:"person"`
	Number         int32   `msgpack:"number"`
	Gender         int32   `msgpack:"gender"`
	Form           string  `msgpack:"form"`
	FormNormalized string  `msgpack:"form_normalized"`
	Transcription  string  `msgpack:"transcription"`
	Meaning        string  `msgpack:"meaning"`
	FormVowelled   *string `msgpack:"form_vowelled,omitempty"`
}

// wireWord is one verb record as stored in the dataset.
type wireWord struct {
	URLID          string     `msgpack:"url_id"`
	Word           string     `msgpack:"word"`
	WordEn         string     `msgpack:"word_en"`
	WordNormalized string     `msgpack:"word_normalized"`
	Transcription  string     `msgpack:"transcription"`
	Root           []string   `msgpack:"root"`
	Forms          []wireForm `msgpack:"forms"`
	Binyan         int32      `msgpack:"binyan"`
	Passive        []wireForm `msgpack:"passive,omitempty"`
	PassiveBinyan  *int32     `msgpack:"passive_binyan,omitempty"`
}

// wireList is the top level of the dataset.
type wireList struct {
	Words []wireWord `msgpack:"words"`
}

var tenses = [...]string{"past", "present", "future"}

var persons = [...]string{"1st", "2nd", "3rd", "all"}

var numbers = [...]string{"singular", "plural"}

var genders = [...]string{"m", "f", "all"}
