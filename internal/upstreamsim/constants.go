package upstreamsim

// Wire format constants. These mirror what the legacy game server emits.
const (
	recordMarker   = "levelId="
	fieldSeparator = "&"
	pageFlagField  = "moreLevels=1"

	hofTokenSeparator = ","
	hofPairSeparator  = "/"
)

// Generation bounds.
const (
	ratingMax    = 5.0
	downloadsMax = 100000
	scoreMax     = 100000
	topTimesLen  = 3
)
