package color

// Named CIE 1931 2 degree white points.
const (
	WP_A   int32 = 0
	WP_D50 int32 = 1
	WP_D55 int32 = 2
	WP_D60 int32 = 3
	WP_D65 int32 = 4
	WP_D75 int32 = 5
	WP_E   int32 = 6
)

func ValidateWhitePoint(whitePoint int32) bool {
	return whitePoint >= WP_A && whitePoint <= WP_E
}

// IsDaylight reports whether the white point belongs to the CIE D series.
func IsDaylight(whitePoint int32) bool {
	return whitePoint >= WP_D50 && whitePoint <= WP_D75
}
