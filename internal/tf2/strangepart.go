package tf2

import (
	"strconv"

	"github.com/tf2tools/skup/internal/attrset"
)

// StrangePart is a strange part counter (`sp-` tag). The numeric value is
// the kill eater score type, which is the wire encoding.
type StrangePart uint32

const (
	StrangePartScoutsKilled               StrangePart = 10
	StrangePartSnipersKilled              StrangePart = 11
	StrangePartSoldiersKilled             StrangePart = 12
	StrangePartDemomenKilled              StrangePart = 13
	StrangePartHeaviesKilled              StrangePart = 14
	StrangePartPyrosKilled                StrangePart = 15
	StrangePartSpiesKilled                StrangePart = 16
	StrangePartEngineersKilled            StrangePart = 17
	StrangePartMedicsKilled               StrangePart = 18
	StrangePartBuildingsDestroyed         StrangePart = 19
	StrangePartProjectilesReflected       StrangePart = 20
	StrangePartHeadshotKills              StrangePart = 21
	StrangePartAirborneEnemyKills         StrangePart = 22
	StrangePartGibKills                   StrangePart = 23
	StrangePartKillsUnderAFullMoon        StrangePart = 27
	StrangePartDominations                StrangePart = 28
	StrangePartRevenges                   StrangePart = 30
	StrangePartPosthumousKills            StrangePart = 31
	StrangePartTeammatesExtinguished      StrangePart = 32
	StrangePartCriticalKills              StrangePart = 33
	StrangePartKillsWhileExplosiveJumping StrangePart = 34
	StrangePartSappersRemoved             StrangePart = 36
	StrangePartCloakedSpiesKilled         StrangePart = 37
	StrangePartMedicsKilledThatHaveFullUberCharge StrangePart = 38
	StrangePartRobotsDestroyed            StrangePart = 39
	StrangePartGiantRobotsDestroyed       StrangePart = 40
	StrangePartKillsWhileLowHealth        StrangePart = 44
	StrangePartKillsDuringHalloween       StrangePart = 45
	StrangePartRobotsKilledDuringHalloween StrangePart = 46
	StrangePartDefendersKilled            StrangePart = 47
	StrangePartSubmergedEnemyKills        StrangePart = 48
	StrangePartKillsWhileInvulnUberCharged StrangePart = 49
	StrangePartTanksDestroyed             StrangePart = 54
	StrangePartFullHealthKills            StrangePart = 61
	StrangePartTauntKills                 StrangePart = 62
	StrangePartNotCritNorMiniCritKills    StrangePart = 64
	StrangePartPlayersHit                 StrangePart = 65
	StrangePartAssists                    StrangePart = 66
	StrangePartLongDistanceKills          StrangePart = 67
	StrangePartKillsDuringVictoryTime     StrangePart = 68
	StrangePartRobotScoutsDestroyed       StrangePart = 74
	StrangePartRobotSpiesDestroyed        StrangePart = 77
	StrangePartTauntingPlayerKills        StrangePart = 79
	StrangePartUnusualWearingPlayerKills  StrangePart = 81
	StrangePartBurningPlayerKills         StrangePart = 82
	StrangePartKillstreaksEnded           StrangePart = 83
	StrangePartFreezecamTauntAppearances  StrangePart = 84
	StrangePartDamageDealt                StrangePart = 85
	StrangePartFiresSurvived              StrangePart = 86
	StrangePartAlliedHealingDone          StrangePart = 87
	StrangePartPointBlankKills            StrangePart = 88
	StrangePartWrangledSentryKills        StrangePart = 89
)

// strangePartValues is every known part in ascending encoding order. The
// position of a part in this slice is its ordinal for set storage, so set
// iteration and canonical serialization come out in ascending encoding
// order for free.
var strangePartValues = []StrangePart{
	StrangePartScoutsKilled,
	StrangePartSnipersKilled,
	StrangePartSoldiersKilled,
	StrangePartDemomenKilled,
	StrangePartHeaviesKilled,
	StrangePartPyrosKilled,
	StrangePartSpiesKilled,
	StrangePartEngineersKilled,
	StrangePartMedicsKilled,
	StrangePartBuildingsDestroyed,
	StrangePartProjectilesReflected,
	StrangePartHeadshotKills,
	StrangePartAirborneEnemyKills,
	StrangePartGibKills,
	StrangePartKillsUnderAFullMoon,
	StrangePartDominations,
	StrangePartRevenges,
	StrangePartPosthumousKills,
	StrangePartTeammatesExtinguished,
	StrangePartCriticalKills,
	StrangePartKillsWhileExplosiveJumping,
	StrangePartSappersRemoved,
	StrangePartCloakedSpiesKilled,
	StrangePartMedicsKilledThatHaveFullUberCharge,
	StrangePartRobotsDestroyed,
	StrangePartGiantRobotsDestroyed,
	StrangePartKillsWhileLowHealth,
	StrangePartKillsDuringHalloween,
	StrangePartRobotsKilledDuringHalloween,
	StrangePartDefendersKilled,
	StrangePartSubmergedEnemyKills,
	StrangePartKillsWhileInvulnUberCharged,
	StrangePartTanksDestroyed,
	StrangePartFullHealthKills,
	StrangePartTauntKills,
	StrangePartNotCritNorMiniCritKills,
	StrangePartPlayersHit,
	StrangePartAssists,
	StrangePartLongDistanceKills,
	StrangePartKillsDuringVictoryTime,
	StrangePartRobotScoutsDestroyed,
	StrangePartRobotSpiesDestroyed,
	StrangePartTauntingPlayerKills,
	StrangePartUnusualWearingPlayerKills,
	StrangePartBurningPlayerKills,
	StrangePartKillstreaksEnded,
	StrangePartFreezecamTauntAppearances,
	StrangePartDamageDealt,
	StrangePartFiresSurvived,
	StrangePartAlliedHealingDone,
	StrangePartPointBlankKills,
	StrangePartWrangledSentryKills,
}

var strangePartNames = map[StrangePart]string{
	StrangePartScoutsKilled:               "Scouts Killed",
	StrangePartSnipersKilled:              "Snipers Killed",
	StrangePartSoldiersKilled:             "Soldiers Killed",
	StrangePartDemomenKilled:              "Demomen Killed",
	StrangePartHeaviesKilled:              "Heavies Killed",
	StrangePartPyrosKilled:                "Pyros Killed",
	StrangePartSpiesKilled:                "Spies Killed",
	StrangePartEngineersKilled:            "Engineers Killed",
	StrangePartMedicsKilled:               "Medics Killed",
	StrangePartBuildingsDestroyed:         "Buildings Destroyed",
	StrangePartProjectilesReflected:       "Projectiles Reflected",
	StrangePartHeadshotKills:              "Headshot Kills",
	StrangePartAirborneEnemyKills:         "Airborne Enemy Kills",
	StrangePartGibKills:                   "Gib Kills",
	StrangePartKillsUnderAFullMoon:        "Kills Under A Full Moon",
	StrangePartDominations:                "Domination Kills",
	StrangePartRevenges:                   "Revenge Kills",
	StrangePartPosthumousKills:            "Posthumous Kills",
	StrangePartTeammatesExtinguished:      "Teammates Extinguished",
	StrangePartCriticalKills:              "Critical Kills",
	StrangePartKillsWhileExplosiveJumping: "Kills While Explosive-Jumping",
	StrangePartSappersRemoved:             "Sappers Removed",
	StrangePartCloakedSpiesKilled:         "Cloaked Spies Killed",
	StrangePartMedicsKilledThatHaveFullUberCharge: "Medics Killed That Have Full ÜberCharge",
	StrangePartRobotsDestroyed:            "Robots Destroyed",
	StrangePartGiantRobotsDestroyed:       "Giant Robots Destroyed",
	StrangePartKillsWhileLowHealth:        "Kills While Low Health",
	StrangePartKillsDuringHalloween:       "Kills During Halloween",
	StrangePartRobotsKilledDuringHalloween: "Robots Killed During Halloween",
	StrangePartDefendersKilled:            "Defenders Killed",
	StrangePartSubmergedEnemyKills:        "Submerged Enemy Kills",
	StrangePartKillsWhileInvulnUberCharged: "Kills While Übercharged",
	StrangePartTanksDestroyed:             "Tanks Destroyed",
	StrangePartFullHealthKills:            "Full Health Kills",
	StrangePartTauntKills:                 "Taunt Kills",
	StrangePartNotCritNorMiniCritKills:    "Not Crit nor MiniCrit Kills",
	StrangePartPlayersHit:                 "Players Hit",
	StrangePartAssists:                    "Assists",
	StrangePartLongDistanceKills:          "Long-Distance Kills",
	StrangePartKillsDuringVictoryTime:     "Kills During Victory Time",
	StrangePartRobotScoutsDestroyed:       "Robot Scouts Destroyed",
	StrangePartRobotSpiesDestroyed:        "Robot Spies Destroyed",
	StrangePartTauntingPlayerKills:        "Taunting Player Kills",
	StrangePartUnusualWearingPlayerKills:  "Unusual-Wearing Player Kills",
	StrangePartBurningPlayerKills:         "Burning Player Kills",
	StrangePartKillstreaksEnded:           "Killstreaks Ended",
	StrangePartFreezecamTauntAppearances:  "Freezecam Taunt Appearances",
	StrangePartDamageDealt:                "Damage Dealt",
	StrangePartFiresSurvived:              "Fires Survived",
	StrangePartAlliedHealingDone:          "Allied Healing Done",
	StrangePartPointBlankKills:            "Point-Blank Kills",
	StrangePartWrangledSentryKills:        "Wrangled Sentry Kills",
}

var strangePartOrdinals = func() map[StrangePart]int {
	m := make(map[StrangePart]int, len(strangePartValues))
	for i, p := range strangePartValues {
		m[p] = i
	}
	return m
}()

// StrangePartFromValue maps a kill eater score type to a StrangePart.
func StrangePartFromValue(v uint32) (StrangePart, bool) {
	p := StrangePart(v)
	if _, ok := strangePartOrdinals[p]; !ok {
		return 0, false
	}
	return p, true
}

func (p StrangePart) String() string {
	if n, ok := strangePartNames[p]; ok {
		return n
	}
	return "StrangePart(" + strconv.FormatUint(uint64(p), 10) + ")"
}

// StrangePartDomain describes the closed strange part enumeration for
// attrset.
type StrangePartDomain struct{}

func (StrangePartDomain) Size() int { return len(strangePartValues) }

func (StrangePartDomain) Ordinal(p StrangePart) int { return strangePartOrdinals[p] }

func (StrangePartDomain) FromOrdinal(i int) StrangePart { return strangePartValues[i] }

// StrangePartSet holds the strange parts applied to one item.
type StrangePartSet = attrset.Set[StrangePart, StrangePartDomain]

// NewStrangePartSet builds a strange part set from the given members. A
// repeated member is an error.
func NewStrangePartSet(parts ...StrangePart) (StrangePartSet, error) {
	return attrset.New[StrangePart, StrangePartDomain](parts...)
}
