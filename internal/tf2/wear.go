package tf2

import "strconv"

// Wear is a decorated weapon wear tier (`w` tag).
type Wear uint32

const (
	WearFactoryNew    Wear = 1
	WearMinimalWear   Wear = 2
	WearFieldTested   Wear = 3
	WearWellWorn      Wear = 4
	WearBattleScarred Wear = 5
)

var wearNames = map[Wear]string{
	WearFactoryNew:    "Factory New",
	WearMinimalWear:   "Minimal Wear",
	WearFieldTested:   "Field-Tested",
	WearWellWorn:      "Well-Worn",
	WearBattleScarred: "Battle Scarred",
}

// WearFromValue maps a wire encoding to a Wear.
func WearFromValue(v uint32) (Wear, bool) {
	w := Wear(v)
	if _, ok := wearNames[w]; !ok {
		return 0, false
	}
	return w, true
}

func (w Wear) String() string {
	if n, ok := wearNames[w]; ok {
		return n
	}
	return "Wear(" + strconv.FormatUint(uint64(w), 10) + ")"
}
