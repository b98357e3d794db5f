// Package sku parses and serializes the semicolon-delimited SKU format
// used to identify TF2 items, e.g. "264;11;kt-3". Parsing is a pure
// function from string to SKU; serialization always emits the canonical
// token order, so any two SKUs that parse equal also print equal.
package sku

import (
	"strconv"
	"strings"

	"github.com/tf2tools/skup/internal/tf2"
)

// SKU is a fully parsed item identifier. It is plain value data: copies
// are independent and == compares every field, including set members,
// independent of the token order the SKU was parsed from.
type SKU struct {
	// Defindex is the item's schema index. It is not validated against a
	// schema; any non-negative integer is accepted.
	Defindex uint32
	Quality  tf2.Quality

	// Craftable defaults to true; the `uncraftable` tag clears it.
	Craftable  bool
	Australium bool
	// Strange marks a strange counter on a non-strange-quality item, e.g.
	// a Strange Unusual. Not to be confused with QualityStrange.
	Strange    bool
	Festivized bool

	Particle       Opt[uint32] // unusual particle effect id
	Skin           Opt[uint32] // decorated weapon paint kit id
	Wear           Opt[tf2.Wear]
	KillstreakTier Opt[tf2.KillstreakTier]
	Sheen          Opt[tf2.Sheen]
	Killstreaker   Opt[tf2.Killstreaker]
	Paint          Opt[tf2.Paint]
	CraftNumber    Opt[uint32]
	CrateNumber    Opt[uint32]
	TargetDefindex Opt[uint32] // e.g. the weapon a killstreak kit applies to
	OutputDefindex Opt[uint32] // e.g. the item a fabricator produces
	OutputQuality  Opt[tf2.Quality]

	Spells       tf2.SpellSet
	StrangeParts tf2.StrangePartSet
}

// New returns a SKU with the given defindex and quality and every other
// attribute absent. Craftable defaults to true.
func New(defindex uint32, quality tf2.Quality) SKU {
	return SKU{
		Defindex:  defindex,
		Quality:   quality,
		Craftable: true,
	}
}

// String serializes the SKU in canonical token order: defindex, quality,
// then each present singular attribute in a fixed order, then strange
// parts in ascending encoding order, then spells in declared enumeration
// order. Absent attributes emit nothing, so parsing the result restores
// an equal SKU.
func (s SKU) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(s.Defindex), 10))
	b.WriteByte(';')
	b.WriteString(strconv.FormatUint(uint64(s.Quality), 10))

	if v, ok := s.Particle.Get(); ok {
		writeTag(&b, "u", v)
	}
	if !s.Craftable {
		b.WriteString(";uncraftable")
	}
	if s.Australium {
		b.WriteString(";australium")
	}
	if s.Strange {
		b.WriteString(";strange")
	}
	if w, ok := s.Wear.Get(); ok {
		writeTag(&b, "w", uint32(w))
	}
	if v, ok := s.Skin.Get(); ok {
		writeTag(&b, "pk", v)
	}
	if t, ok := s.KillstreakTier.Get(); ok {
		writeTag(&b, "kt-", uint32(t))
	}
	if s.Festivized {
		b.WriteString(";festive")
	}
	if v, ok := s.CrateNumber.Get(); ok {
		writeTag(&b, "c", v)
	}
	if v, ok := s.CraftNumber.Get(); ok {
		writeTag(&b, "n", v)
	}
	if v, ok := s.TargetDefindex.Get(); ok {
		writeTag(&b, "td-", v)
	}
	if v, ok := s.OutputDefindex.Get(); ok {
		writeTag(&b, "od-", v)
	}
	if q, ok := s.OutputQuality.Get(); ok {
		writeTag(&b, "oq-", uint32(q))
	}
	if p, ok := s.Paint.Get(); ok {
		writeTag(&b, "p", uint32(p))
	}
	if v, ok := s.Sheen.Get(); ok {
		writeTag(&b, "ks-", uint32(v))
	}
	if k, ok := s.Killstreaker.Get(); ok {
		writeTag(&b, "ke-", uint32(k))
	}
	for _, part := range s.StrangeParts.Members() {
		writeTag(&b, "sp-", uint32(part))
	}
	for _, spell := range s.Spells.Members() {
		b.WriteByte(';')
		switch spell.Kind() {
		case tf2.SpellKindFootprints:
			v, _ := spell.Value()
			b.WriteString("footprints-")
			b.WriteString(strconv.FormatUint(uint64(v), 10))
		case tf2.SpellKindPaint:
			v, _ := spell.Value()
			b.WriteString("paintspell-")
			b.WriteString(strconv.FormatUint(uint64(v), 10))
		default:
			b.WriteString(spell.Keyword())
		}
	}

	return b.String()
}

func writeTag(b *strings.Builder, name string, v uint32) {
	b.WriteByte(';')
	b.WriteString(name)
	b.WriteString(strconv.FormatUint(uint64(v), 10))
}

// MarshalText serializes the SKU as its canonical string, which also makes
// a SKU JSON-encode as a string value.
func (s SKU) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses strictly.
func (s *SKU) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
