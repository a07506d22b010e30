package color

import (
	"errors"
	"fmt"
)

var (
	CM_WP_A   = &CIEXY{X: 0.44757, Y: 0.40745}
	CM_WP_D50 = &CIEXY{X: 0.34570, Y: 0.35850}
	CM_WP_D55 = &CIEXY{X: 0.33243, Y: 0.34744}
	CM_WP_D60 = &CIEXY{X: 0.32168, Y: 0.33767}
	CM_WP_D65 = &CIEXY{X: 0.31270, Y: 0.32900}
	CM_WP_D75 = &CIEXY{X: 0.29903, Y: 0.31488}
	CM_WP_E   = &CIEXY{X: 1.0 / 3.0, Y: 1.0 / 3.0}

	whitePointNames = map[int32]string{
		WP_A:   "A",
		WP_D50: "D50",
		WP_D55: "D55",
		WP_D60: "D60",
		WP_D65: "D65",
		WP_D75: "D75",
		WP_E:   "E",
	}
)

// GetWhitePoint returns a copy of the chromaticity for a named white point.
func GetWhitePoint(whitePoint int32) (*CIEXY, error) {
	var wp *CIEXY
	switch whitePoint {
	case WP_A:
		wp = CM_WP_A
	case WP_D50:
		wp = CM_WP_D50
	case WP_D55:
		wp = CM_WP_D55
	case WP_D60:
		wp = CM_WP_D60
	case WP_D65:
		wp = CM_WP_D65
	case WP_D75:
		wp = CM_WP_D75
	case WP_E:
		wp = CM_WP_E
	default:
		return nil, fmt.Errorf("unknown white point %d", whitePoint)
	}
	return NewCIEXY(wp.X, wp.Y), nil
}

// WhitePointByName looks up a white point by its CIE name, e.g. "D65".
func WhitePointByName(name string) (int32, error) {
	for wp, n := range whitePointNames {
		if n == name {
			return wp, nil
		}
	}
	return -1, fmt.Errorf("unknown white point name %q", name)
}

func WhitePointName(whitePoint int32) string {
	return whitePointNames[whitePoint]
}

func validateXY(xy CIEXY) error {
	if xy.X < 0 || xy.X > 1 || xy.Y <= 0 || xy.Y > 1 {
		return errors.New("invalid chromaticity")
	}
	return nil
}

// GetXYZ converts a chromaticity to tristimulus values normalised to Y = 1.
func GetXYZ(xy CIEXY) ([]float64, error) {
	if err := validateXY(xy); err != nil {
		return nil, err
	}
	invY := 1.0 / xy.Y
	return []float64{xy.X * invY, 1.0, (1.0 - xy.X - xy.Y) * invY}, nil
}
