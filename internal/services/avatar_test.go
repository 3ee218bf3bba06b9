package services

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/yungbote/luminus-backend/internal/pkg/logger"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Dana Wright", "DW"},
		{"Prince", "P"},
		{"mary jane watson", "MW"},
		{"Øyvind Åsen", "ØÅ"},
		{"", "?"},
	}
	for _, tt := range tests {
		if got := initials(tt.name); got != tt.want {
			t.Errorf("initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
		if !utf8.ValidString(initials(tt.name)) {
			t.Errorf("initials(%q) produced invalid UTF-8", tt.name)
		}
	}
}

func TestPickColorDeterministic(t *testing.T) {
	if pickColor("EMP-001") != pickColor("EMP-001") {
		t.Error("same key must pick the same color")
	}
	found := false
	for _, c := range avatarPalette {
		if c == pickColor("EMP-001") {
			found = true
		}
	}
	if !found {
		t.Error("picked color not in palette")
	}
}

func TestRenderProducesPNG(t *testing.T) {
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	svc := NewAvatarService(log)

	png, err := svc.Render("Dana Wright", "EMP-001", 64)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG")
	}

	again, err := svc.Render("Dana Wright", "EMP-001", 64)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(png, again) {
		t.Error("same inputs must render identical bytes")
	}
}
