package tabular

import (
	"testing"

	"github.com/yungbote/luminus-backend/internal/pkg/errors"
)

func TestDecode(t *testing.T) {
	data := []byte("name,Level,Peer_Review_Score\nAlice Johnson,L5,4.5\nBob Smith,L3,3.8\n")
	rows, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if got := rows[0].Get("name"); got != "Alice Johnson" {
		t.Errorf("name = %q", got)
	}
	if got := rows[1].Float("Peer_Review_Score"); got != 3.8 {
		t.Errorf("Peer_Review_Score = %v, want 3.8", got)
	}
}

func TestDecodeShortAndLongRecords(t *testing.T) {
	data := []byte("name,Level,Team\nAlice,L5\nBob,L3,Core,extra\n")
	rows, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := rows[0].Get("Team"); got != "" {
		t.Errorf("short record Team = %q, want empty", got)
	}
	if got := rows[1].Get("Team"); got != "Core" {
		t.Errorf("long record Team = %q, want Core", got)
	}
}

func TestDecodeHeaderOnly(t *testing.T) {
	rows, err := Decode([]byte("name,Level\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(rows))
	}
}

func TestDecodeEmptyFile(t *testing.T) {
	_, err := Decode(nil)
	if err == nil {
		t.Fatal("expected error for empty file")
	}
	if !errors.IsMalformedInput(err) {
		t.Errorf("error %v is not a malformed input error", err)
	}
}

func TestRowAccessorDefaults(t *testing.T) {
	row := Row{"Count": "not-a-number", "Rate": ""}
	if got := row.Int("Count"); got != 0 {
		t.Errorf("Int on garbage = %d, want 0", got)
	}
	if got := row.Float("Rate"); got != 0 {
		t.Errorf("Float on blank = %v, want 0", got)
	}
	if got := row.Int("Missing"); got != 0 {
		t.Errorf("Int on missing column = %d, want 0", got)
	}
	if got := (Row{"N": "12.0"}).Int("N"); got != 12 {
		t.Errorf("Int on float-formatted cell = %d, want 12", got)
	}
}
