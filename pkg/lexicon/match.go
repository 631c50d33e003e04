package lexicon

// MatchForms classifies which slots of entry equal the already normalized
// query. Order: infinitive, then active forms by position, then passive
// forms by position. A surface may match several slots.
func MatchForms(entry *WordEntry, normalized string) []MatchedForm {
	matches := make([]MatchedForm, 0, 2)
	if entry.WordNormalized == normalized {
		matches = append(matches, MatchedForm{Index: 0, Kind: Infinitive})
	}
	for i := range entry.Forms {
		if entry.Forms[i].FormNormalized == normalized {
			matches = append(matches, MatchedForm{Index: i, Kind: Active})
		}
	}
	for i := range entry.Passive {
		if entry.Passive[i].FormNormalized == normalized {
			matches = append(matches, MatchedForm{Index: i, Kind: Passive})
		}
	}
	return matches
}

// FormAt resolves a match back to the inflected form it points at.
// The second result is false for Infinitive matches and out-of-range indexes.
func (w WordEntry) FormAt(m MatchedForm) (InflectedForm, bool) {
	var forms []InflectedForm
	switch m.Kind {
	case Active:
		forms = w.Forms
	case Passive:
		forms = w.Passive
	default:
		return InflectedForm{}, false
	}
	if m.Index < 0 || m.Index >= len(forms) {
		return InflectedForm{}, false
	}
	return forms[m.Index], true
}
