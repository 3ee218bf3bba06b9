package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	BurnoutLow    = "low"
	BurnoutMedium = "medium"
	BurnoutHigh   = "high"
)

// BurnoutRisk is a tagged variant: the roster pipeline derives one numeric
// score, but the two response shapes expose it either as a 0..100 number or
// as a low/medium/high label. Keeping both forms behind one type avoids the
// historical drift where callers had to know which shape a code path emits.
type BurnoutRisk struct {
	numeric  int
	category string
	isScore  bool
}

func NumericBurnout(score int) BurnoutRisk {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return BurnoutRisk{numeric: score, isScore: true}
}

func CategoricalBurnout(category string) BurnoutRisk {
	return BurnoutRisk{category: NormalizeBurnoutCategory(category)}
}

// Score returns the numeric form, mapping categories to representative
// mid-band values when the risk was built categorically.
func (b BurnoutRisk) Score() int {
	if b.isScore {
		return b.numeric
	}
	switch b.category {
	case BurnoutHigh:
		return 80
	case BurnoutMedium:
		return 50
	default:
		return 20
	}
}

// Category returns the 3-level form. Boundaries are inclusive-low at 40/70.
func (b BurnoutRisk) Category() string {
	if !b.isScore {
		return b.category
	}
	return BurnoutCategoryForScore(b.numeric)
}

func (b BurnoutRisk) MarshalJSON() ([]byte, error) {
	if b.isScore {
		return json.Marshal(b.numeric)
	}
	return json.Marshal(b.category)
}

func (b *BurnoutRisk) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*b = NumericBurnout(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = CategoricalBurnout(s)
		return nil
	}
	return fmt.Errorf("burnout risk must be a number or a category string")
}

func BurnoutCategoryForScore(score int) string {
	switch {
	case score >= 70:
		return BurnoutHigh
	case score >= 40:
		return BurnoutMedium
	default:
		return BurnoutLow
	}
}

// NormalizeBurnoutCategory folds legacy spellings ("med") into the canonical
// three labels.
func NormalizeBurnoutCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case BurnoutHigh:
		return BurnoutHigh
	case BurnoutMedium, "med":
		return BurnoutMedium
	default:
		return BurnoutLow
	}
}
