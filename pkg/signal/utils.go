package signal

import (
	"math"
)

func DbmToMw(dbm float64) float64 {
	return math.Pow(10, dbm/10)
}

func MwToDbm(mw float64) float64 {
	return 10 * math.Log10(mw)
}
