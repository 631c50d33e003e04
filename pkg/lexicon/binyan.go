package lexicon

import "fmt"

// Binyan is a verb derivation class, held as its display name ("PA'AL").
// The zero value BinyanNone means absent.
type Binyan string

const (
	BinyanNone Binyan = ""
	Paal       Binyan = "PA'AL"
	Nifal      Binyan = "NIF'AL"
	Piel       Binyan = "PI'EL"
	Pual       Binyan = "PU'AL"
	Hifil      Binyan = "HIF'IL"
	Hufal      Binyan = "HUF'AL"
	Hitpael    Binyan = "HITPA'EL"
)

// binyanCodes lists internal codes in wire enum order.
var binyanCodes = [...]string{"paal", "nifal", "piel", "pual", "hifil", "hufal", "hitpael"}

// binyanNames maps internal codes to display names. Read only.
var binyanNames = map[string]Binyan{
	"paal":    Paal,
	"nifal":   Nifal,
	"piel":    Piel,
	"pual":    Pual,
	"hifil":   Hifil,
	"hufal":   Hufal,
	"hitpael": Hitpael,
}

// BinyanByName resolves an internal code such as "hitpael".
func BinyanByName(code string) (Binyan, bool) {
	b, ok := binyanNames[code]
	return b, ok
}

// BinyanByCode resolves a wire enum value (0 = paal ... 6 = hitpael).
func BinyanByCode(code int32) (Binyan, error) {
	if code < 0 || int(code) >= len(binyanCodes) {
		return BinyanNone, fmt.Errorf("invalid binyan value: %d", code)
	}
	b, _ := BinyanByName(binyanCodes[code])
	return b, nil
}

// Code returns the wire enum value of b, or -1 for BinyanNone and unknown names.
func (b Binyan) Code() int32 {
	for i, code := range binyanCodes {
		if binyanNames[code] == b {
			return int32(i)
		}
	}
	return -1
}
