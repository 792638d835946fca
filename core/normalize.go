package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/surveyrank/schema"
)

// rankStep is the linear step between adjacent ranks on the unified scale.
// Rank 1 maps to 5.0 and rank 8 maps to 1.0.
const rankStep = 4.0 / 7.0

// NormalizeRank maps an ordinal rank in [1,8] onto the unified 1-5 scale.
// Rank 1 (most preferred) becomes 5.0 and rank 8 becomes 1.0.
func NormalizeRank(rank int) (float64, error) {
	if rank < schema.MinRank || rank > schema.MaxRank {
		return 0, fmt.Errorf("rank %d outside [%d,%d]", rank, schema.MinRank, schema.MaxRank)
	}
	return schema.MaxRating - float64(rank-1)*rankStep, nil
}

// NormalizeDirect validates a direct rating already on the 1-5 scale.
// NaN compares false against both bounds, so finiteness is checked first.
func NormalizeDirect(rating float64) (float64, error) {
	if math.IsNaN(rating) || math.IsInf(rating, 0) || rating < schema.MinRating || rating > schema.MaxRating {
		return 0, fmt.Errorf("rating %g outside [%g,%g]", rating, schema.MinRating, schema.MaxRating)
	}
	return rating, nil
}

// NormalizeAgreement maps a Likert agreement label onto the unified scale.
func NormalizeAgreement(label string) (float64, error) {
	if rating, ok := schema.AgreementRatings[strings.TrimSpace(label)]; ok {
		return rating, nil
	}
	return 0, fmt.Errorf("unknown agreement label %q", label)
}

// normalizeCell dispatches a raw cell value to its family's normalizer.
// The bool result is false for blank cells, which produce no observation.
func normalizeCell(family schema.Family, raw string) (float64, bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, false, nil
	}

	switch family {
	case schema.RankedFamily:
		rank, err := strconv.Atoi(value)
		if err != nil {
			return 0, false, fmt.Errorf("rank %q is not an integer", value)
		}
		rating, err := NormalizeRank(rank)
		if err != nil {
			return 0, false, err
		}
		return rating, true, nil

	case schema.DirectFamily:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false, fmt.Errorf("rating %q is not numeric", value)
		}
		rating, err := NormalizeDirect(parsed)
		if err != nil {
			return 0, false, err
		}
		return rating, true, nil

	default: // AgreementFamily
		rating, err := NormalizeAgreement(value)
		if err != nil {
			return 0, false, err
		}
		return rating, true, nil
	}
}
