package dictionary

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/lexserve/pkg/lexicon"
	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func entries() []lexicon.WordEntry {
	return []lexicon.WordEntry{
		{
			ID:             "1-lichtov",
			Word:           "לכתוב",
			WordNormalized: "לכתוב",
			Translation:    "to write",
			Transcription:  "lichtov",
			Root:           []string{"כ", "ת", "ב"},
			Binyan:         lexicon.Paal,
			Forms: []lexicon.InflectedForm{{
				Tense:          lexicon.Past,
				Person:         lexicon.First,
				Number:         lexicon.Singular,
				Gender:         lexicon.GenderAll,
				Form:           "כתבתי",
				FormNormalized: "כתבתי",
				Transcription:  "katavti",
				Meaning:        "I wrote",
				FormVowelled:   "כָּתַבְתִּי",
			}},
		},
		{
			ID:             "2-lehachtiv",
			Word:           "להכתיב",
			WordNormalized: "להכתיב",
			Translation:    "to dictate",
			Root:           []string{"כ", "ת", "ב"},
			Binyan:         lexicon.Hifil,
			Forms: []lexicon.InflectedForm{{
				Tense: lexicon.Future, Person: lexicon.Third, Number: lexicon.Plural, Gender: lexicon.Feminine,
				Form: "יכתיבו", FormNormalized: "יכתיבו",
			}},
			Passive: []lexicon.InflectedForm{{
				Tense: lexicon.Present, Person: lexicon.PersonAll, Number: lexicon.Singular, Gender: lexicon.Masculine,
				Form: "מוכתב", FormNormalized: "מוכתב",
			}},
			PassiveBinyan: lexicon.Hufal,
		},
	}
}

func TestEncodeDecode(t *testing.T) {
	want := entries()
	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestDecodeFillsNormalized(t *testing.T) {
	list := wireList{Words: []wireWord{{
		URLID: "1",
		Word:  "לִכְתּוֹב",
		Forms: []wireForm{{Form: "כָּתַב"}},
	}}}
	data, err := msgpack.Marshal(&list)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got[0].WordNormalized != "לכתוב" || got[0].Forms[0].FormNormalized != "כתב" {
		t.Errorf("normalized fields not derived: %q %q", got[0].WordNormalized, got[0].Forms[0].FormNormalized)
	}
	if got[0].Forms[0].Tense != lexicon.Past || got[0].Binyan != lexicon.Paal {
		t.Errorf("zero enums should decode to the first value, got %q %q", got[0].Forms[0].Tense, got[0].Binyan)
	}
	if got[0].HasPassive() {
		t.Error("missing passive should stay absent")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		words  []wireWord
		record int
	}{
		{"bad binyan", []wireWord{{URLID: "a", Binyan: 7}}, 0},
		{"bad tense", []wireWord{{URLID: "a"}, {URLID: "b", Forms: []wireForm{{Tense: 3}}}}, 1},
		{"bad gender", []wireWord{{URLID: "a", Forms: []wireForm{{Gender: -1}}}}, 0},
		{"bad passive person", []wireWord{{URLID: "a", Passive: []wireForm{{Person: 4}}}}, 0},
		{"bad passive binyan", []wireWord{{URLID: "a", PassiveBinyan: ptr(int32(9))}}, 0},
		{"missing id", []wireWord{{Word: "x"}}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := msgpack.Marshal(&wireList{Words: tc.words})
			if err != nil {
				t.Fatal(err)
			}
			got, err := Decode(data)
			if got != nil {
				t.Errorf("Decode returned %d entries alongside an error", len(got))
			}
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("Decode error = %v, want *DecodeError", err)
			}
			if decErr.Record != tc.record {
				t.Errorf("Record = %d, want %d", decErr.Record, tc.record)
			}
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte{0xc1, 0x00})
	var decErr *DecodeError
	if !errors.As(err, &decErr) || decErr.Record != -1 {
		t.Errorf("Decode(garbage) error = %v, want container DecodeError", err)
	}
}

func TestEncodeRejectsUnknownValues(t *testing.T) {
	bad := entries()
	bad[0].Forms[0].Tense = "pluperfect"
	if _, err := Encode(bad); err == nil {
		t.Error("Encode should reject an unknown tense")
	}

	bad = entries()
	bad[1].Binyan = "KAL"
	if _, err := Encode(bad); err == nil {
		t.Error("Encode should reject an unknown binyan")
	}
}

func ptr[T any](v T) *T {
	return &v
}

func writeDataset(t *testing.T, name string, gz bool, list []lexicon.WordEntry) string {
	t.Helper()
	data, err := Encode(list)
	if err != nil {
		t.Fatal(err)
	}
	if gz {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		data = buf.Bytes()
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name string
		gz   bool
	}{
		{"words.mpk", false},
		{"words.msgpack", false},
		{"words.mpk.gz", true},
		{"WORDS.MSGPACK.GZ", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeDataset(t, tc.name, tc.gz, entries())
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if diff := cmp.Diff(entries(), got); diff != "" {
				t.Errorf("Load (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	empty := writeDataset(t, "empty.mpk", false, nil)
	if _, err := Load(empty); !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("Load(empty) error = %v, want ErrEmptyDataset", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.mpk")); err == nil {
		t.Error("Load(missing) should fail")
	}

	wrongExt := writeDataset(t, "words.json", false, entries())
	if _, err := Load(wrongExt); err == nil {
		t.Error("Load(.json) should fail")
	}

	notGzip := writeDataset(t, "words.mpk.gz", false, entries())
	if _, err := Load(notGzip); err == nil {
		t.Error("Load of a plain file named .gz should fail")
	}
}

func TestDetectFileFormat(t *testing.T) {
	plain := writeDataset(t, "a.mpk", false, entries())
	packed := writeDataset(t, "a.mpk.gz", true, entries())

	if f, err := DetectFileFormat(plain); err != nil || f != FormatMsgpack {
		t.Errorf("DetectFileFormat(plain) = %v, %v", f, err)
	}
	if f, err := DetectFileFormat(packed); err != nil || f != FormatMsgpackGzip {
		t.Errorf("DetectFileFormat(gzip) = %v, %v", f, err)
	}
	if f, err := DetectFileFormat(t.TempDir()); err == nil || f != FormatUnknown {
		t.Errorf("DetectFileFormat(dir) = %v, %v", f, err)
	}

	info, ok := GetFormatInfo(FormatMsgpackGzip)
	if !ok || info.Extensions[0] != ".mpk.gz" {
		t.Errorf("GetFormatInfo = %+v, %v", info, ok)
	}
	if _, ok := GetFormatInfo(FormatUnknown); ok {
		t.Error("GetFormatInfo(unknown) should report false")
	}
}
