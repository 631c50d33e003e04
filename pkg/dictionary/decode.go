package dictionary

import (
	"fmt"
	"slices"

	"github.com/bastiangx/lexserve/internal/utils"
	"github.com/bastiangx/lexserve/pkg/lexicon"
	"github.com/vmihailenco/msgpack/v5"
)

// DecodeError reports a malformed dataset. Record is the position of the
// offending record, or -1 when the container itself could not be read.
type DecodeError struct {
	Record int
	ID     string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Record < 0 {
		return fmt.Sprintf("decode dataset: %v", e.Err)
	}
	return fmt.Sprintf("decode record %d (%s): %v", e.Record, e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode parses a packed dataset into entries. Missing normalized surfaces
// are derived from the surface with utils.Normalize.
func Decode(data []byte) ([]lexicon.WordEntry, error) {
	var list wireList
	if err := msgpack.Unmarshal(data, &list); err != nil {
		return nil, &DecodeError{Record: -1, Err: err}
	}

	entries := make([]lexicon.WordEntry, 0, len(list.Words))
	for i := range list.Words {
		entry, err := convertWord(&list.Words[i])
		if err != nil {
			return nil, &DecodeError{Record: i, ID: list.Words[i].URLID, Err: err}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Encode packs entries into the dataset format read by Decode.
func Encode(entries []lexicon.WordEntry) ([]byte, error) {
	list := wireList{Words: make([]wireWord, 0, len(entries))}
	for i := range entries {
		w, err := toWire(&entries[i])
		if err != nil {
			return nil, fmt.Errorf("encode entry %q: %w", entries[i].ID, err)
		}
		list.Words = append(list.Words, w)
	}
	return msgpack.Marshal(&list)
}

func convertWord(w *wireWord) (lexicon.WordEntry, error) {
	if w.URLID == "" {
		return lexicon.WordEntry{}, fmt.Errorf("missing url_id")
	}
	binyan, err := lexicon.BinyanByCode(w.Binyan)
	if err != nil {
		return lexicon.WordEntry{}, err
	}
	forms, err := convertForms(w.Forms)
	if err != nil {
		return lexicon.WordEntry{}, fmt.Errorf("active forms: %w", err)
	}

	entry := lexicon.WordEntry{
		ID:             w.URLID,
		Word:           w.Word,
		Translation:    w.WordEn,
		WordNormalized: w.WordNormalized,
		Transcription:  w.Transcription,
		Root:           slices.Clone(w.Root),
		Forms:          forms,
		Binyan:         binyan,
	}
	if entry.WordNormalized == "" {
		entry.WordNormalized = utils.Normalize(w.Word)
	}

	// An empty passive list means no passive conjugation.
	if len(w.Passive) > 0 {
		entry.Passive, err = convertForms(w.Passive)
		if err != nil {
			return lexicon.WordEntry{}, fmt.Errorf("passive forms: %w", err)
		}
	}
	if w.PassiveBinyan != nil {
		entry.PassiveBinyan, err = lexicon.BinyanByCode(*w.PassiveBinyan)
		if err != nil {
			return lexicon.WordEntry{}, fmt.Errorf("passive %w", err)
		}
	}
	return entry, nil
}

func convertForms(src []wireForm) ([]lexicon.InflectedForm, error) {
	forms := make([]lexicon.InflectedForm, 0, len(src))
	for i := range src {
		f, err := convertForm(&src[i])
		if err != nil {
			return nil, fmt.Errorf("form %d: %w", i, err)
		}
		forms = append(forms, f)
	}
	return forms, nil
}

func convertForm(f *wireForm) (lexicon.InflectedForm, error) {
	tense, err := enumName(tenses[:], f.Tense, "tense")
	if err != nil {
		return lexicon.InflectedForm{}, err
	}
	person, err := enumName(persons[:], f.Person, "person")
	if err != nil {
		return lexicon.InflectedForm{}, err
	}
	number, err := enumName(numbers[:], f.Number, "number")
	if err != nil {
		return lexicon.InflectedForm{}, err
	}
	gender, err := enumName(genders[:], f.Gender, "gender")
	if err != nil {
		return lexicon.InflectedForm{}, err
	}

	form := lexicon.InflectedForm{
		Tense:          lexicon.Tense(tense),
		Person:         lexicon.Person(person),
		Number:         lexicon.Number(number),
		Gender:         lexicon.Gender(gender),
		Form:           f.Form,
		FormNormalized: f.FormNormalized,
		Transcription:  f.Transcription,
		Meaning:        f.Meaning,
	}
	if form.FormNormalized == "" {
		form.FormNormalized = utils.Normalize(f.Form)
	}
	if f.FormVowelled != nil {
		form.FormVowelled = *f.FormVowelled
	}
	return form, nil
}

func enumName(names []string, v int32, kind string) (string, error) {
	if v < 0 || int(v) >= len(names) {
		return "", fmt.Errorf("invalid %s value: %d", kind, v)
	}
	return names[v], nil
}

func enumCode(names []string, name, kind string) (int32, error) {
	i := slices.Index(names, name)
	if i < 0 {
		return 0, fmt.Errorf("invalid %s: %q", kind, name)
	}
	return int32(i), nil
}

func toWire(e *lexicon.WordEntry) (wireWord, error) {
	binyan := e.Binyan.Code()
	if binyan < 0 {
		return wireWord{}, fmt.Errorf("invalid binyan: %q", e.Binyan)
	}
	forms, err := toWireForms(e.Forms)
	if err != nil {
		return wireWord{}, err
	}
	w := wireWord{
		URLID:          e.ID,
		Word:           e.Word,
		WordEn:         e.Translation,
		WordNormalized: e.WordNormalized,
		Transcription:  e.Transcription,
		Root:           e.Root,
		Forms:          forms,
		Binyan:         binyan,
	}
	if e.Passive != nil {
		if w.Passive, err = toWireForms(e.Passive); err != nil {
			return wireWord{}, err
		}
	}
	if e.PassiveBinyan != lexicon.BinyanNone {
		code := e.PassiveBinyan.Code()
		if code < 0 {
			return wireWord{}, fmt.Errorf("invalid passive binyan: %q", e.PassiveBinyan)
		}
		w.PassiveBinyan = &code
	}
	return w, nil
}

func toWireForms(src []lexicon.InflectedForm) ([]wireForm, error) {
	out := make([]wireForm, 0, len(src))
	for i := range src {
		f := &src[i]
		tense, err := enumCode(tenses[:], string(f.Tense), "tense")
		if err != nil {
			return nil, err
		}
		person, err := enumCode(persons[:], string(f.Person), "person")
		if err != nil {
			return nil, err
		}
		number, err := enumCode(numbers[:], string(f.Number), "number")
		if err != nil {
			return nil, err
		}
		gender, err := enumCode(genders[:], string(f.Gender), "gender")
		if err != nil {
			return nil, err
		}
		wf := wireForm{
			Tense:          tense,
			Person:         person,
			Number:         number,
			Gender:         gender,
			Form:           f.Form,
			FormNormalized: f.FormNormalized,
			Transcription:  f.Transcription,
			Meaning:        f.Meaning,
		}
		if f.FormVowelled != "" {
			v := f.FormVowelled
			wf.FormVowelled = &v
		}
		out = append(out, wf)
	}
	return out, nil
}
