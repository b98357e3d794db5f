package tf2

import "strconv"

// KillstreakTier is a killstreak kit tier (`kt-` tag).
type KillstreakTier uint32

const (
	KillstreakTierBasic        KillstreakTier = 1
	KillstreakTierSpecialized  KillstreakTier = 2
	KillstreakTierProfessional KillstreakTier = 3
)

var killstreakTierNames = map[KillstreakTier]string{
	KillstreakTierBasic:        "Killstreak",
	KillstreakTierSpecialized:  "Specialized Killstreak",
	KillstreakTierProfessional: "Professional Killstreak",
}

// KillstreakTierFromValue maps a wire encoding to a KillstreakTier.
func KillstreakTierFromValue(v uint32) (KillstreakTier, bool) {
	t := KillstreakTier(v)
	if _, ok := killstreakTierNames[t]; !ok {
		return 0, false
	}
	return t, true
}

func (t KillstreakTier) String() string {
	if n, ok := killstreakTierNames[t]; ok {
		return n
	}
	return "KillstreakTier(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// Sheen is a killstreak sheen (`ks-` tag). Requires a specialized or
// professional kit on the item.
type Sheen uint32

const (
	SheenTeamShine        Sheen = 1
	SheenDeadlyDaffodil   Sheen = 2
	SheenManndarin        Sheen = 3
	SheenMeanGreen        Sheen = 4
	SheenAgonizingEmerald Sheen = 5
	SheenVillainousViolet Sheen = 6
	SheenHotRod           Sheen = 7
)

var sheenNames = map[Sheen]string{
	SheenTeamShine:        "Team Shine",
	SheenDeadlyDaffodil:   "Deadly Daffodil",
	SheenManndarin:        "Manndarin",
	SheenMeanGreen:        "Mean Green",
	SheenAgonizingEmerald: "Agonizing Emerald",
	SheenVillainousViolet: "Villainous Violet",
	SheenHotRod:           "Hot Rod",
}

// SheenFromValue maps a wire encoding to a Sheen.
func SheenFromValue(v uint32) (Sheen, bool) {
	s := Sheen(v)
	if _, ok := sheenNames[s]; !ok {
		return 0, false
	}
	return s, true
}

func (s Sheen) String() string {
	if n, ok := sheenNames[s]; ok {
		return n
	}
	return "Sheen(" + strconv.FormatUint(uint64(s), 10) + ")"
}

// Killstreaker is a professional killstreak eye effect (`ke-` tag).
type Killstreaker uint32

const (
	KillstreakerFireHorns         Killstreaker = 2002
	KillstreakerCerebralDischarge Killstreaker = 2003
	KillstreakerTornado           Killstreaker = 2004
	KillstreakerFlames            Killstreaker = 2005
	KillstreakerSingularity       Killstreaker = 2006
	KillstreakerIncinerator       Killstreaker = 2007
	KillstreakerHypnoBeam         Killstreaker = 2008
)

var killstreakerNames = map[Killstreaker]string{
	KillstreakerFireHorns:         "Fire Horns",
	KillstreakerCerebralDischarge: "Cerebral Discharge",
	KillstreakerTornado:           "Tornado",
	KillstreakerFlames:            "Flames",
	KillstreakerSingularity:       "Singularity",
	KillstreakerIncinerator:       "Incinerator",
	KillstreakerHypnoBeam:         "Hypno-Beam",
}

// KillstreakerFromValue maps a wire encoding to a Killstreaker.
func KillstreakerFromValue(v uint32) (Killstreaker, bool) {
	k := Killstreaker(v)
	if _, ok := killstreakerNames[k]; !ok {
		return 0, false
	}
	return k, true
}

func (k Killstreaker) String() string {
	if n, ok := killstreakerNames[k]; ok {
		return n
	}
	return "Killstreaker(" + strconv.FormatUint(uint64(k), 10) + ")"
}
