package ops

import (
	"github.com/tf2tools/skup/internal/config"
	"github.com/tf2tools/skup/internal/errors"
	"github.com/tf2tools/skup/internal/sku"
)

// ParseInput contains parameters for the Parse operation.
type ParseInput struct {
	SKUs    []string
	Lenient *bool // nil: use config default
}

// ParseOutput contains the result of the Parse operation.
type ParseOutput struct {
	Results []ParseResult `json:"results"`
	Parsed  int           `json:"parsed"`
	Failed  int           `json:"failed"`
}

// ParseResult is the outcome for a single input string. Exactly one of
// Record and Error is populated.
type ParseResult struct {
	Input     string      `json:"input"`
	Canonical string      `json:"canonical,omitempty"`
	Record    *Record     `json:"record,omitempty"`
	Error     *ParseIssue `json:"error,omitempty"`
}

// ParseIssue is the JSON view of a parse failure.
type ParseIssue struct {
	Code      string `json:"code"`
	Attribute string `json:"attribute,omitempty"`
	Token     string `json:"token,omitempty"`
	Message   string `json:"message"`
}

// EnumField pairs an enum's wire value with its display name.
type EnumField struct {
	Value uint32 `json:"value"`
	Name  string `json:"name"`
}

// Record is the JSON view of a parsed SKU. Absent attributes are omitted;
// enum-valued attributes carry both the wire value and the display name.
type Record struct {
	Defindex    uint32 `json:"defindex"`
	Quality     uint32 `json:"quality"`
	QualityName string `json:"quality_name"`

	Craftable  bool `json:"craftable"`
	Australium bool `json:"australium,omitempty"`
	Strange    bool `json:"strange,omitempty"`
	Festivized bool `json:"festivized,omitempty"`

	Particle       *uint32    `json:"particle,omitempty"`
	Skin           *uint32    `json:"skin,omitempty"`
	Wear           *EnumField `json:"wear,omitempty"`
	KillstreakTier *EnumField `json:"killstreak_tier,omitempty"`
	Sheen          *EnumField `json:"sheen,omitempty"`
	Killstreaker   *EnumField `json:"killstreaker,omitempty"`
	Paint          *EnumField `json:"paint,omitempty"`
	CraftNumber    *uint32    `json:"craft_number,omitempty"`
	CrateNumber    *uint32    `json:"crate_number,omitempty"`
	TargetDefindex *uint32    `json:"target_defindex,omitempty"`
	OutputDefindex *uint32    `json:"output_defindex,omitempty"`
	OutputQuality  *EnumField `json:"output_quality,omitempty"`

	Spells       []string    `json:"spells,omitempty"`
	StrangeParts []EnumField `json:"strange_parts,omitempty"`
}

// Parse parses one or more SKU strings. Individual failures land in the
// per-input results; only invalid requests fail the operation itself.
func Parse(cfg *config.Config, input ParseInput) (*ParseOutput, error) {
	if len(input.SKUs) == 0 {
		return nil, errors.NewInvalidRequest("at least one sku is required")
	}
	if len(input.SKUs) > MaxParseInputs {
		return nil, errors.NewInvalidRequest("too many skus in one request")
	}

	lenient := cfg != nil && cfg.Lenient
	if input.Lenient != nil {
		lenient = *input.Lenient
	}

	out := &ParseOutput{
		Results: make([]ParseResult, 0, len(input.SKUs)),
	}

	for _, raw := range input.SKUs {
		result := ParseResult{Input: raw}

		var (
			rec sku.SKU
			err error
		)
		if lenient {
			rec, err = sku.ParseLenient(raw)
		} else {
			rec, err = sku.Parse(raw)
		}

		if err != nil {
			result.Error = parseIssue(err)
			out.Failed++
		} else {
			result.Canonical = rec.String()
			result.Record = NewRecord(rec)
			out.Parsed++
		}

		out.Results = append(out.Results, result)
	}

	return out, nil
}

// CanonInput contains parameters for the Canon operation.
type CanonInput struct {
	SKU     string
	Lenient *bool
}

// CanonOutput contains the result of the Canon operation.
type CanonOutput struct {
	Input     string  `json:"input"`
	Canonical string  `json:"canonical"`
	Changed   bool    `json:"changed"`
	Record    *Record `json:"record"`
}

// Canon parses a single SKU string and returns its canonical form.
func Canon(cfg *config.Config, input CanonInput) (*CanonOutput, error) {
	if input.SKU == "" {
		return nil, errors.NewInvalidRequest("sku is required")
	}

	rec, err := parseOne(cfg, input.SKU, input.Lenient)
	if err != nil {
		return nil, err
	}

	canonical := rec.String()
	return &CanonOutput{
		Input:     input.SKU,
		Canonical: canonical,
		Changed:   canonical != input.SKU,
		Record:    NewRecord(rec),
	}, nil
}

// parseIssue converts a parse error into its JSON view.
func parseIssue(err error) *ParseIssue {
	if pe, ok := err.(*sku.ParseError); ok {
		return &ParseIssue{
			Code:      string(pe.Code),
			Attribute: pe.Attribute,
			Token:     pe.Token,
			Message:   pe.Message,
		}
	}
	return &ParseIssue{
		Code:    string(errors.ErrParse),
		Message: err.Error(),
	}
}

// NewRecord builds the JSON view of a parsed SKU.
func NewRecord(s sku.SKU) *Record {
	r := &Record{
		Defindex:    s.Defindex,
		Quality:     uint32(s.Quality),
		QualityName: s.Quality.String(),
		Craftable:   s.Craftable,
		Australium:  s.Australium,
		Strange:     s.Strange,
		Festivized:  s.Festivized,
	}

	if v, ok := s.Particle.Get(); ok {
		r.Particle = &v
	}
	if v, ok := s.Skin.Get(); ok {
		r.Skin = &v
	}
	if w, ok := s.Wear.Get(); ok {
		r.Wear = &EnumField{Value: uint32(w), Name: w.String()}
	}
	if t, ok := s.KillstreakTier.Get(); ok {
		r.KillstreakTier = &EnumField{Value: uint32(t), Name: t.String()}
	}
	if v, ok := s.Sheen.Get(); ok {
		r.Sheen = &EnumField{Value: uint32(v), Name: v.String()}
	}
	if k, ok := s.Killstreaker.Get(); ok {
		r.Killstreaker = &EnumField{Value: uint32(k), Name: k.String()}
	}
	if p, ok := s.Paint.Get(); ok {
		r.Paint = &EnumField{Value: uint32(p), Name: p.String()}
	}
	if v, ok := s.CraftNumber.Get(); ok {
		r.CraftNumber = &v
	}
	if v, ok := s.CrateNumber.Get(); ok {
		r.CrateNumber = &v
	}
	if v, ok := s.TargetDefindex.Get(); ok {
		r.TargetDefindex = &v
	}
	if v, ok := s.OutputDefindex.Get(); ok {
		r.OutputDefindex = &v
	}
	if q, ok := s.OutputQuality.Get(); ok {
		r.OutputQuality = &EnumField{Value: uint32(q), Name: q.String()}
	}

	for _, spell := range s.Spells.Members() {
		r.Spells = append(r.Spells, spell.String())
	}
	for _, part := range s.StrangeParts.Members() {
		r.StrangeParts = append(r.StrangeParts, EnumField{Value: uint32(part), Name: part.String()})
	}

	return r
}

// parseOne parses a single SKU string, honoring the config default unless
// lenient is set explicitly, and maps failures to app errors.
func parseOne(cfg *config.Config, raw string, lenient *bool) (sku.SKU, error) {
	useLenient := cfg != nil && cfg.Lenient
	if lenient != nil {
		useLenient = *lenient
	}

	var (
		rec sku.SKU
		err error
	)
	if useLenient {
		rec, err = sku.ParseLenient(raw)
	} else {
		rec, err = sku.Parse(raw)
	}
	if err != nil {
		return sku.SKU{}, errors.NewParse(raw, err)
	}
	return rec, nil
}
