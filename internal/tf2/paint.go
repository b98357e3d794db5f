package tf2

import "strconv"

// Paint is a paint can color (`p` tag). The encoding is the paint's RGB
// color packed as a single integer, which is how the game identifies it.
type Paint uint32

const (
	PaintADistinctiveLackOfHue            Paint = 1315860
	PaintAfterEight                       Paint = 2960676
	PaintAColorSimilarToSlate             Paint = 3100495
	PaintTheBitterTasteOfDefeatAndLime    Paint = 3329330
	PaintBalaclavasAreForever             Paint = 3874595
	PaintZepheniahsGreed                  Paint = 4345659
	PaintOperatorsOveralls                Paint = 4732984
	PaintNobleHattersViolet               Paint = 5322826
	PaintAnAirOfDebonair                  Paint = 6637376
	PaintRadiganConagherBrown             Paint = 6901050
	PaintIndubitablyGreen                 Paint = 7511618
	PaintYeOldeRusticColour               Paint = 8154199
	PaintADeepCommitmentToPurple          Paint = 8208497
	PaintAgedMoustacheGrey                Paint = 8289918
	PaintTheValueOfTeamwork               Paint = 8400928
	PaintDrablyOlive                      Paint = 8421376
	PaintMuskelmannbraun                  Paint = 10843461
	PaintWaterloggedLabCoat               Paint = 11049612
	PaintTeamSpirit                       Paint = 12073019
	PaintAMannsMint                       Paint = 12377523
	PaintCreamSpirit                      Paint = 12807213
	PaintPecuniaryGreed                   Paint = 12955537
	PaintMannCoOrange                     Paint = 13595446
	PaintColorNo216190216                 Paint = 14204632
	PaintAnExtraordinaryAbundanceOfTinge  Paint = 15132390
	PaintAustraliumGold                   Paint = 15185211
	PaintDarkSalmonInjustice              Paint = 15308410
	PaintTheColorOfAGentlemannsBusinessPants Paint = 15787660
	PaintPinkAsHell                       Paint = 16738740
)

var paintNames = map[Paint]string{
	PaintADistinctiveLackOfHue:            "A Distinctive Lack of Hue",
	PaintAfterEight:                       "After Eight",
	PaintAColorSimilarToSlate:             "A Color Similar to Slate",
	PaintTheBitterTasteOfDefeatAndLime:    "The Bitter Taste of Defeat and Lime",
	PaintBalaclavasAreForever:             "Balaclavas Are Forever",
	PaintZepheniahsGreed:                  "Zepheniah's Greed",
	PaintOperatorsOveralls:                "Operator's Overalls",
	PaintNobleHattersViolet:               "Noble Hatter's Violet",
	PaintAnAirOfDebonair:                  "An Air of Debonair",
	PaintRadiganConagherBrown:             "Radigan Conagher Brown",
	PaintIndubitablyGreen:                 "Indubitably Green",
	PaintYeOldeRusticColour:               "Ye Olde Rustic Colour",
	PaintADeepCommitmentToPurple:          "A Deep Commitment to Purple",
	PaintAgedMoustacheGrey:                "Aged Moustache Grey",
	PaintTheValueOfTeamwork:               "The Value of Teamwork",
	PaintDrablyOlive:                      "Drably Olive",
	PaintMuskelmannbraun:                  "Muskelmannbraun",
	PaintWaterloggedLabCoat:               "Waterlogged Lab Coat",
	PaintTeamSpirit:                       "Team Spirit",
	PaintAMannsMint:                       "A Mann's Mint",
	PaintCreamSpirit:                      "Cream Spirit",
	PaintPecuniaryGreed:                   "Peculiarly Drab Tincture",
	PaintMannCoOrange:                     "Mann Co. Orange",
	PaintColorNo216190216:                 "Color No. 216-190-216",
	PaintAnExtraordinaryAbundanceOfTinge:  "An Extraordinary Abundance of Tinge",
	PaintAustraliumGold:                   "Australium Gold",
	PaintDarkSalmonInjustice:              "Dark Salmon Injustice",
	PaintTheColorOfAGentlemannsBusinessPants: "The Color of a Gentlemann's Business Pants",
	PaintPinkAsHell:                       "Pink as Hell",
}

// PaintFromValue maps a packed color encoding to a Paint.
func PaintFromValue(v uint32) (Paint, bool) {
	p := Paint(v)
	if _, ok := paintNames[p]; !ok {
		return 0, false
	}
	return p, true
}

func (p Paint) String() string {
	if n, ok := paintNames[p]; ok {
		return n
	}
	return "Paint(" + strconv.FormatUint(uint64(p), 10) + ")"
}
