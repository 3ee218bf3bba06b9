package types

import (
	"encoding/json"
	"testing"
)

func TestBurnoutCategoryForScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, BurnoutLow},
		{39, BurnoutLow},
		{40, BurnoutMedium},
		{69, BurnoutMedium},
		{70, BurnoutHigh},
		{100, BurnoutHigh},
	}
	for _, tt := range tests {
		if got := BurnoutCategoryForScore(tt.score); got != tt.want {
			t.Errorf("BurnoutCategoryForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestBurnoutRiskJSON(t *testing.T) {
	num, err := json.Marshal(NumericBurnout(47))
	if err != nil {
		t.Fatalf("marshal numeric: %v", err)
	}
	if string(num) != "47" {
		t.Errorf("numeric form = %s, want 47", num)
	}

	cat, err := json.Marshal(CategoricalBurnout("High"))
	if err != nil {
		t.Fatalf("marshal categorical: %v", err)
	}
	if string(cat) != `"high"` {
		t.Errorf("categorical form = %s, want \"high\"", cat)
	}

	var back BurnoutRisk
	if err := json.Unmarshal([]byte(`"medium"`), &back); err != nil {
		t.Fatalf("unmarshal categorical: %v", err)
	}
	if back.Score() != 50 {
		t.Errorf("medium representative score = %d, want 50", back.Score())
	}
}

func TestBurnoutRiskConversions(t *testing.T) {
	if got := NumericBurnout(150).Score(); got != 100 {
		t.Errorf("score above range clamps to %d, want 100", got)
	}
	if got := NumericBurnout(71).Category(); got != BurnoutHigh {
		t.Errorf("71 maps to %q, want high", got)
	}
	if got := CategoricalBurnout("unknown").Category(); got != BurnoutLow {
		t.Errorf("unknown category folds to %q, want low", got)
	}
}
