package color

import (
	"fmt"
)

// CIEXY is a CIE 1931 chromaticity coordinate pair.
type CIEXY struct {
	X float64
	Y float64
}

func NewCIEXY(x float64, y float64) *CIEXY {
	cxy := &CIEXY{}
	cxy.X = x
	cxy.Y = y
	return cxy
}

func (cxy *CIEXY) Matches(b *CIEXY) bool {
	if b == nil {
		return false
	}
	return cxy.X == b.X && cxy.Y == b.Y
}

func (cxy CIEXY) String() string {
	return fmt.Sprintf("(%v, %v)", cxy.X, cxy.Y)
}
