package board

import "fmt"

// Score is a signed evaluation or search score in centipawns, positive
// favoring White. Wide enough to carry the mate-distance encoding defined
// in pkg/search (a search-wide infinity sentinel of 1,000,000).
type Score int32

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}
