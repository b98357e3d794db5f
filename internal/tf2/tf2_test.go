package tf2

import "testing"

func TestQualityFromValue(t *testing.T) {
	tests := []struct {
		value uint32
		want  Quality
		ok    bool
	}{
		{0, QualityNormal, true},
		{1, QualityGenuine, true},
		{3, QualityVintage, true},
		{5, QualityUnusual, true},
		{6, QualityUnique, true},
		{11, QualityStrange, true},
		{15, QualityDecoratedWeapon, true},
		{2, 0, false},
		{4, 0, false},
		{10, 0, false},
		{12, 0, false},
		{16, 0, false},
		{99, 0, false},
	}

	for _, tt := range tests {
		got, ok := QualityFromValue(tt.value)
		if ok != tt.ok || got != tt.want {
			t.Errorf("QualityFromValue(%d) = %v,%v, want %v,%v",
				tt.value, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFromValueMissReturnsZero(t *testing.T) {
	if w, ok := WearFromValue(6); ok || w != 0 {
		t.Errorf("WearFromValue(6) = %v,%v, want 0,false", w, ok)
	}
	if s, ok := SheenFromValue(8); ok || s != 0 {
		t.Errorf("SheenFromValue(8) = %v,%v, want 0,false", s, ok)
	}
	if kt, ok := KillstreakTierFromValue(4); ok || kt != 0 {
		t.Errorf("KillstreakTierFromValue(4) = %v,%v, want 0,false", kt, ok)
	}
	if k, ok := KillstreakerFromValue(2009); ok || k != 0 {
		t.Errorf("KillstreakerFromValue(2009) = %v,%v, want 0,false", k, ok)
	}
	if p, ok := PaintFromValue(123); ok || p != 0 {
		t.Errorf("PaintFromValue(123) = %v,%v, want 0,false", p, ok)
	}
	if sp, ok := StrangePartFromValue(9999); ok || sp != 0 {
		t.Errorf("StrangePartFromValue(9999) = %v,%v, want 0,false", sp, ok)
	}
}

func TestQualityFromName(t *testing.T) {
	tests := []struct {
		name string
		want Quality
		ok   bool
	}{
		{"Unique", QualityUnique, true},
		{"unique", QualityUnique, true},
		{"STRANGE", QualityStrange, true},
		{"Self-Made", QualitySelfMade, true},
		{"Collector's", QualityCollectors, true},
		{"Decorated Weapon", QualityDecoratedWeapon, true},
		{"bogus", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := QualityFromName(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("QualityFromName(%q) = %v,%v, want %v,%v",
				tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestQualityString(t *testing.T) {
	if got := QualityUnusual.String(); got != "Unusual" {
		t.Errorf("String() = %q, want %q", got, "Unusual")
	}
	if got := Quality(99).String(); got != "Quality(99)" {
		t.Errorf("String() = %q, want %q", got, "Quality(99)")
	}
}

func TestKillstreakEnums(t *testing.T) {
	if _, ok := KillstreakTierFromValue(0); ok {
		t.Error("KillstreakTierFromValue(0) = ok, want miss")
	}
	if tier, ok := KillstreakTierFromValue(3); !ok || tier != KillstreakTierProfessional {
		t.Errorf("KillstreakTierFromValue(3) = %v,%v", tier, ok)
	}
	if _, ok := KillstreakTierFromValue(4); ok {
		t.Error("KillstreakTierFromValue(4) = ok, want miss")
	}

	if s, ok := SheenFromValue(1); !ok || s != SheenTeamShine {
		t.Errorf("SheenFromValue(1) = %v,%v", s, ok)
	}
	if _, ok := SheenFromValue(8); ok {
		t.Error("SheenFromValue(8) = ok, want miss")
	}

	if k, ok := KillstreakerFromValue(2002); !ok || k != KillstreakerFireHorns {
		t.Errorf("KillstreakerFromValue(2002) = %v,%v", k, ok)
	}
	if _, ok := KillstreakerFromValue(2009); ok {
		t.Error("KillstreakerFromValue(2009) = ok, want miss")
	}
}

func TestWearFromValue(t *testing.T) {
	for v := uint32(1); v <= 5; v++ {
		if _, ok := WearFromValue(v); !ok {
			t.Errorf("WearFromValue(%d) = miss, want ok", v)
		}
	}
	if _, ok := WearFromValue(0); ok {
		t.Error("WearFromValue(0) = ok, want miss")
	}
	if _, ok := WearFromValue(6); ok {
		t.Error("WearFromValue(6) = ok, want miss")
	}
	if got := WearBattleScarred.String(); got != "Battle Scarred" {
		t.Errorf("String() = %q, want %q", got, "Battle Scarred")
	}
}

func TestPaintFromValue(t *testing.T) {
	if p, ok := PaintFromValue(8421376); !ok || p != PaintDrablyOlive {
		t.Errorf("PaintFromValue(8421376) = %v,%v", p, ok)
	}
	if _, ok := PaintFromValue(123); ok {
		t.Error("PaintFromValue(123) = ok, want miss")
	}
	if got := PaintDrablyOlive.String(); got != "Drably Olive" {
		t.Errorf("String() = %q, want %q", got, "Drably Olive")
	}
}

func TestSpellLookups(t *testing.T) {
	if s, ok := PaintSpellFromValue(0); !ok || s != SpellDieJob {
		t.Errorf("PaintSpellFromValue(0) = %v,%v", s, ok)
	}
	if s, ok := PaintSpellFromValue(4); !ok || s != SpellSinisterStaining {
		t.Errorf("PaintSpellFromValue(4) = %v,%v", s, ok)
	}
	if _, ok := PaintSpellFromValue(5); ok {
		t.Error("PaintSpellFromValue(5) = ok, want miss")
	}

	if s, ok := FootprintsSpellFromValue(2); !ok || s != SpellHeadlessHorseshoes {
		t.Errorf("FootprintsSpellFromValue(2) = %v,%v", s, ok)
	}
	if s, ok := FootprintsSpellFromValue(13595446); !ok || s != SpellRottenOrangeFootprints {
		t.Errorf("FootprintsSpellFromValue(13595446) = %v,%v", s, ok)
	}
	// A footprints value never resolves as a paint spell and vice versa.
	if _, ok := PaintSpellFromValue(3100495); ok {
		t.Error("PaintSpellFromValue(3100495) = ok, want miss")
	}
	if _, ok := FootprintsSpellFromValue(0); ok {
		t.Error("FootprintsSpellFromValue(0) = ok, want miss")
	}

	if s, ok := SpellFromKeyword("voices"); !ok || s != SpellVoicesFromBelow {
		t.Errorf("SpellFromKeyword(voices) = %v,%v", s, ok)
	}
	if s, ok := SpellFromKeyword("exorcism"); !ok || s != SpellExorcism {
		t.Errorf("SpellFromKeyword(exorcism) = %v,%v", s, ok)
	}
	if _, ok := SpellFromKeyword("paintspell-"); ok {
		t.Error("SpellFromKeyword matched a prefixed token")
	}
}

func TestSpellKinds(t *testing.T) {
	if SpellDieJob.Kind() != SpellKindPaint {
		t.Error("SpellDieJob kind != paint")
	}
	if SpellHeadlessHorseshoes.Kind() != SpellKindFootprints {
		t.Error("SpellHeadlessHorseshoes kind != footprints")
	}
	if SpellExorcism.Kind() != SpellKindBare {
		t.Error("SpellExorcism kind != bare")
	}

	if v, ok := SpellHeadlessHorseshoes.Value(); !ok || v != 2 {
		t.Errorf("SpellHeadlessHorseshoes.Value() = %d,%v, want 2,true", v, ok)
	}
	if _, ok := SpellExorcism.Value(); ok {
		t.Error("bare spell reported a numeric value")
	}
	if got := SpellExorcism.Keyword(); got != "exorcism" {
		t.Errorf("Keyword() = %q, want %q", got, "exorcism")
	}
	if got := SpellVoicesFromBelow.String(); got != "Voices from Below" {
		t.Errorf("String() = %q, want %q", got, "Voices from Below")
	}
}

func TestNewSpellSet(t *testing.T) {
	s, err := NewSpellSet(SpellExorcism, SpellDieJob)
	if err != nil {
		t.Fatalf("NewSpellSet failed: %v", err)
	}
	members := s.Members()
	if len(members) != 2 || members[0] != SpellDieJob || members[1] != SpellExorcism {
		t.Errorf("Members() = %v", members)
	}

	if _, err := NewSpellSet(SpellExorcism, SpellExorcism); err == nil {
		t.Error("NewSpellSet with duplicate succeeded")
	}
}

func TestStrangePartDomain(t *testing.T) {
	var d StrangePartDomain
	if d.Size() > 64 {
		t.Fatalf("domain size %d exceeds bitset capacity", d.Size())
	}
	// Ordinal and FromOrdinal must invert each other over the whole
	// domain, and ordinals must follow ascending encoding order.
	prev := StrangePart(0)
	for i := 0; i < d.Size(); i++ {
		p := d.FromOrdinal(i)
		if d.Ordinal(p) != i {
			t.Errorf("Ordinal(FromOrdinal(%d)) = %d", i, d.Ordinal(p))
		}
		if i > 0 && p <= prev {
			t.Errorf("ordinal %d encoding %d not ascending", i, p)
		}
		prev = p
	}
}

func TestStrangePartFromValue(t *testing.T) {
	if p, ok := StrangePartFromValue(28); !ok || p != StrangePartDominations {
		t.Errorf("StrangePartFromValue(28) = %v,%v", p, ok)
	}
	if _, ok := StrangePartFromValue(9999); ok {
		t.Error("StrangePartFromValue(9999) = ok, want miss")
	}
	if got := StrangePartDominations.String(); got != "Domination Kills" {
		t.Errorf("String() = %q, want %q", got, "Domination Kills")
	}
}
