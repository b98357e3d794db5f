package tf2

import "github.com/tf2tools/skup/internal/attrset"

// Spell is a Halloween spell. Spells come in three lexical shapes on the
// wire: paint spells (`paintspell-<N>`), footprints spells
// (`footprints-<N>`), and bare keyword spells (`voices`, `exorcism`,
// `pumpkinbombs`, `halloweenfire`). The Spell value itself is an ordinal;
// the wire encoding of prefixed spells is available through Value.
type Spell uint8

const (
	SpellDieJob Spell = iota
	SpellChromaticCorruption
	SpellPutrescentPigmentation
	SpellSpectralSpectrum
	SpellSinisterStaining
	SpellTeamSpiritFootprints
	SpellHeadlessHorseshoes
	SpellCorpseGrayFootprints
	SpellViolentVioletFootprints
	SpellBruisedPurpleFootprints
	SpellGangreeneFootprints
	SpellRottenOrangeFootprints
	SpellVoicesFromBelow
	SpellPumpkinBombs
	SpellHalloweenFire
	SpellExorcism

	spellCount
)

// SpellKind is the lexical shape of a spell's wire token.
type SpellKind uint8

const (
	SpellKindPaint SpellKind = iota
	SpellKindFootprints
	SpellKindBare
)

type spellInfo struct {
	name  string
	kind  SpellKind
	value uint32 // wire encoding for prefixed spells
	token string // wire keyword for bare spells
}

var spellTable = [spellCount]spellInfo{
	SpellDieJob:                  {name: "Die Job", kind: SpellKindPaint, value: 0},
	SpellChromaticCorruption:     {name: "Chromatic Corruption", kind: SpellKindPaint, value: 1},
	SpellPutrescentPigmentation:  {name: "Putrescent Pigmentation", kind: SpellKindPaint, value: 2},
	SpellSpectralSpectrum:        {name: "Spectral Spectrum", kind: SpellKindPaint, value: 3},
	SpellSinisterStaining:        {name: "Sinister Staining", kind: SpellKindPaint, value: 4},
	SpellTeamSpiritFootprints:    {name: "Team Spirit Footprints", kind: SpellKindFootprints, value: 1},
	SpellHeadlessHorseshoes:      {name: "Headless Horseshoes", kind: SpellKindFootprints, value: 2},
	SpellCorpseGrayFootprints:    {name: "Corpse Gray Footprints", kind: SpellKindFootprints, value: 3100495},
	SpellViolentVioletFootprints: {name: "Violent Violet Footprints", kind: SpellKindFootprints, value: 5322826},
	SpellBruisedPurpleFootprints: {name: "Bruised Purple Footprints", kind: SpellKindFootprints, value: 8208497},
	SpellGangreeneFootprints:     {name: "Gangreen Footprints", kind: SpellKindFootprints, value: 8421376},
	SpellRottenOrangeFootprints:  {name: "Rotten Orange Footprints", kind: SpellKindFootprints, value: 13595446},
	SpellVoicesFromBelow:         {name: "Voices from Below", kind: SpellKindBare, token: "voices"},
	SpellPumpkinBombs:            {name: "Pumpkin Bombs", kind: SpellKindBare, token: "pumpkinbombs"},
	SpellHalloweenFire:           {name: "Halloween Fire", kind: SpellKindBare, token: "halloweenfire"},
	SpellExorcism:                {name: "Exorcism", kind: SpellKindBare, token: "exorcism"},
}

// Kind reports the lexical shape of the spell's wire token.
func (s Spell) Kind() SpellKind { return spellTable[s].kind }

// Value returns the wire encoding of a prefixed spell. Bare spells have no
// encoding and return false.
func (s Spell) Value() (uint32, bool) {
	if spellTable[s].kind == SpellKindBare {
		return 0, false
	}
	return spellTable[s].value, true
}

// Keyword returns the wire keyword of a bare spell, or "" for prefixed
// spells.
func (s Spell) Keyword() string { return spellTable[s].token }

func (s Spell) String() string { return spellTable[s].name }

// PaintSpellFromValue maps a `paintspell-` encoding to a Spell.
func PaintSpellFromValue(v uint32) (Spell, bool) {
	return spellFromValue(SpellKindPaint, v)
}

// FootprintsSpellFromValue maps a `footprints-` encoding to a Spell.
func FootprintsSpellFromValue(v uint32) (Spell, bool) {
	return spellFromValue(SpellKindFootprints, v)
}

func spellFromValue(kind SpellKind, v uint32) (Spell, bool) {
	for s := Spell(0); s < spellCount; s++ {
		if spellTable[s].kind == kind && spellTable[s].value == v {
			return s, true
		}
	}
	return 0, false
}

// SpellFromKeyword maps a bare keyword token to a Spell.
func SpellFromKeyword(token string) (Spell, bool) {
	for s := Spell(0); s < spellCount; s++ {
		if spellTable[s].kind == SpellKindBare && spellTable[s].token == token {
			return s, true
		}
	}
	return 0, false
}

// SpellDomain describes the closed spell enumeration for attrset.
type SpellDomain struct{}

func (SpellDomain) Size() int               { return int(spellCount) }
func (SpellDomain) Ordinal(s Spell) int     { return int(s) }
func (SpellDomain) FromOrdinal(i int) Spell { return Spell(i) }

// SpellSet holds the spells applied to one item.
type SpellSet = attrset.Set[Spell, SpellDomain]

// NewSpellSet builds a spell set from the given members. A repeated member
// is an error.
func NewSpellSet(spells ...Spell) (SpellSet, error) {
	return attrset.New[Spell, SpellDomain](spells...)
}
