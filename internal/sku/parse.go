package sku

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tf2tools/skup/internal/attrset"
	"github.com/tf2tools/skup/internal/tf2"
)

// Parse parses a SKU string strictly: every token must conform to the
// grammar or the whole parse fails.
func Parse(s string) (SKU, error) {
	return parse(s, false)
}

// ParseLenient parses like Parse except for the quality token: when the
// second token is not a valid quality encoding the SKU gets
// QualityNormal, and the token is re-tried as an attribute so inputs like
// "12;u43;kt-1" still capture the particle. A quality-slot token that
// matches nothing is forgiven; every other error remains hard.
func ParseLenient(s string) (SKU, error) {
	return parse(s, true)
}

func parse(s string, lenient bool) (SKU, error) {
	tokens := strings.Split(s, ";")
	if len(tokens) < 2 {
		return SKU{}, errInsufficientFields()
	}

	defindex, err := strconv.ParseUint(tokens[0], 10, 32)
	if err != nil {
		return SKU{}, errInvalidIdentifier(tokens[0])
	}

	p := &parser{
		rec:  New(uint32(defindex), tf2.QualityNormal),
		seen: make(map[string]bool),
	}

	if q, ok := parseQuality(tokens[1]); ok {
		p.rec.Quality = q
	} else if !lenient {
		return SKU{}, errInvalidQuality(tokens[1])
	} else if perr := p.applyElement(tokens[1]); perr != nil {
		// The token occupied the quality slot, so not being an attribute
		// either is forgiven. A recognized attribute with a bad value is
		// still an error.
		if perr.Code != CodeUnknownAttribute && perr.Code != CodeEmptyElement {
			return SKU{}, perr
		}
	}

	for _, token := range tokens[2:] {
		if perr := p.applyElement(token); perr != nil {
			return SKU{}, perr
		}
	}

	return p.rec, nil
}

func parseQuality(token string) (tf2.Quality, bool) {
	v, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, false
	}
	return tf2.QualityFromValue(uint32(v))
}

// parser accumulates decoded attributes into a record and tracks which
// singular attributes have already been applied.
type parser struct {
	rec  SKU
	seen map[string]bool
}

// decoder recognizes one lexical shape of attribute token. Decoders are
// tried in the order of the decoders slice; names are matched exactly
// against the non-digit head of the token, so no two decoders can claim
// the same token and the order is total and stable.
type decoder struct {
	name     string // token head: a prefix like "kt-" or a bare keyword
	key      string // attribute key used in error messages
	keyword  bool   // bare keyword; a trailing numeric suffix disqualifies the match
	singular bool   // at most one occurrence per SKU
	apply    func(p *parser, token, value string) *ParseError
}

// applyElement decodes one attribute token into the record.
func (p *parser) applyElement(token string) *ParseError {
	if token == "" {
		return errEmptyElement()
	}
	name, value := splitTrailingDigits(token)
	for _, d := range decoders {
		if d.name != name {
			continue
		}
		if d.keyword && value != "" {
			// e.g. "australium2" is not the australium keyword
			break
		}
		if d.singular {
			if p.seen[d.key] {
				return errDuplicateAttribute(d.key, token)
			}
			p.seen[d.key] = true
		}
		return d.apply(p, token, value)
	}
	return errUnknownAttribute(token)
}

// splitTrailingDigits splits a token at the point where its trailing run
// of ASCII digits begins. The value part is empty when the token ends in
// a non-digit. Operating on bytes is deliberate: a multi-byte character is
// never an ASCII digit, so the scan stops at it.
func splitTrailingDigits(token string) (name, value string) {
	i := len(token)
	for i > 0 && token[i-1] >= '0' && token[i-1] <= '9' {
		i--
	}
	return token[:i], token[i:]
}

func parseValue(key, token, value string) (uint32, *ParseError) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, errInvalidValue(key, token)
	}
	return uint32(n), nil
}

func insertSpell(p *parser, key, token string, spell tf2.Spell) *ParseError {
	return insertErr(p.rec.Spells.Insert(spell), key, token)
}

func insertErr(err error, key, token string) *ParseError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, attrset.ErrDuplicate):
		return errDuplicateAttribute(key, token)
	default:
		return errInvalidValue(key, token)
	}
}

// decoders is the complete attribute grammar, in priority order: numeric
// tags, prefixed enum tags, multi-valued tags, then bare keywords.
var decoders = []decoder{
	{name: "u", key: "particle", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("particle", token, value)
		if perr != nil {
			return perr
		}
		p.rec.Particle = Some(n)
		return nil
	}},
	{name: "w", key: "wear", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("wear", token, value)
		if perr != nil {
			return perr
		}
		w, ok := tf2.WearFromValue(n)
		if !ok {
			return errInvalidValue("wear", token)
		}
		p.rec.Wear = Some(w)
		return nil
	}},
	{name: "pk", key: "skin", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("skin", token, value)
		if perr != nil {
			return perr
		}
		p.rec.Skin = Some(n)
		return nil
	}},
	{name: "n", key: "craft number", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("craft number", token, value)
		if perr != nil {
			return perr
		}
		p.rec.CraftNumber = Some(n)
		return nil
	}},
	{name: "c", key: "crate number", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("crate number", token, value)
		if perr != nil {
			return perr
		}
		p.rec.CrateNumber = Some(n)
		return nil
	}},
	{name: "p", key: "paint", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("paint", token, value)
		if perr != nil {
			return perr
		}
		paint, ok := tf2.PaintFromValue(n)
		if !ok {
			return errInvalidValue("paint", token)
		}
		p.rec.Paint = Some(paint)
		return nil
	}},
	{name: "kt-", key: "killstreak tier", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("killstreak tier", token, value)
		if perr != nil {
			return perr
		}
		t, ok := tf2.KillstreakTierFromValue(n)
		if !ok {
			return errInvalidValue("killstreak tier", token)
		}
		p.rec.KillstreakTier = Some(t)
		return nil
	}},
	{name: "td-", key: "target defindex", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("target defindex", token, value)
		if perr != nil {
			return perr
		}
		p.rec.TargetDefindex = Some(n)
		return nil
	}},
	{name: "od-", key: "output defindex", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("output defindex", token, value)
		if perr != nil {
			return perr
		}
		p.rec.OutputDefindex = Some(n)
		return nil
	}},
	{name: "oq-", key: "output quality", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("output quality", token, value)
		if perr != nil {
			return perr
		}
		q, ok := tf2.QualityFromValue(n)
		if !ok {
			return errInvalidValue("output quality", token)
		}
		p.rec.OutputQuality = Some(q)
		return nil
	}},
	{name: "ks-", key: "sheen", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("sheen", token, value)
		if perr != nil {
			return perr
		}
		s, ok := tf2.SheenFromValue(n)
		if !ok {
			return errInvalidValue("sheen", token)
		}
		p.rec.Sheen = Some(s)
		return nil
	}},
	{name: "ke-", key: "killstreaker", singular: true, apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("killstreaker", token, value)
		if perr != nil {
			return perr
		}
		k, ok := tf2.KillstreakerFromValue(n)
		if !ok {
			return errInvalidValue("killstreaker", token)
		}
		p.rec.Killstreaker = Some(k)
		return nil
	}},
	{name: "sp-", key: "strange part", apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("strange part", token, value)
		if perr != nil {
			return perr
		}
		part, ok := tf2.StrangePartFromValue(n)
		if !ok {
			return errInvalidValue("strange part", token)
		}
		return insertErr(p.rec.StrangeParts.Insert(part), "strange part", token)
	}},
	{name: "footprints-", key: "footprints spell", apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("footprints spell", token, value)
		if perr != nil {
			return perr
		}
		spell, ok := tf2.FootprintsSpellFromValue(n)
		if !ok {
			return errInvalidValue("footprints spell", token)
		}
		return insertSpell(p, "footprints spell", token, spell)
	}},
	{name: "paintspell-", key: "paint spell", apply: func(p *parser, token, value string) *ParseError {
		n, perr := parseValue("paint spell", token, value)
		if perr != nil {
			return perr
		}
		spell, ok := tf2.PaintSpellFromValue(n)
		if !ok {
			return errInvalidValue("paint spell", token)
		}
		return insertSpell(p, "paint spell", token, spell)
	}},
	{name: "voices", key: "spell", keyword: true, apply: func(p *parser, token, _ string) *ParseError {
		return insertSpell(p, "spell", token, tf2.SpellVoicesFromBelow)
	}},
	{name: "exorcism", key: "spell", keyword: true, apply: func(p *parser, token, _ string) *ParseError {
		return insertSpell(p, "spell", token, tf2.SpellExorcism)
	}},
	{name: "pumpkinbombs", key: "spell", keyword: true, apply: func(p *parser, token, _ string) *ParseError {
		return insertSpell(p, "spell", token, tf2.SpellPumpkinBombs)
	}},
	{name: "halloweenfire", key: "spell", keyword: true, apply: func(p *parser, token, _ string) *ParseError {
		return insertSpell(p, "spell", token, tf2.SpellHalloweenFire)
	}},
	{name: "uncraftable", key: "craftable", keyword: true, singular: true, apply: func(p *parser, _, _ string) *ParseError {
		p.rec.Craftable = false
		return nil
	}},
	{name: "australium", key: "australium", keyword: true, singular: true, apply: func(p *parser, _, _ string) *ParseError {
		p.rec.Australium = true
		return nil
	}},
	{name: "strange", key: "strange", keyword: true, singular: true, apply: func(p *parser, _, _ string) *ParseError {
		p.rec.Strange = true
		return nil
	}},
	{name: "festive", key: "festivized", keyword: true, singular: true, apply: func(p *parser, _, _ string) *ParseError {
		p.rec.Festivized = true
		return nil
	}},
}
