package services

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/yungbote/luminus-backend/internal/pkg/logger"
	"github.com/yungbote/luminus-backend/internal/utils"
)

type AvatarService interface {
	Render(name, key string, size int) ([]byte, error)
}

type avatarService struct {
	font *truetype.Font
	log  *logger.Logger
}

var avatarPalette = []string{
	"#4F46E5", "#0891B2", "#059669", "#D97706", "#DC2626",
	"#7C3AED", "#DB2777", "#2563EB", "#65A30D", "#EA580C",
}

// NewAvatarService renders deterministic initials avatars. The typeface is
// loaded once from AVATAR_FONT; without one, avatars render as plain colored
// discs.
func NewAvatarService(baseLog *logger.Logger) AvatarService {
	serviceLog := baseLog.With("service", "AvatarService")

	var parsed *truetype.Font
	if path := utils.GetEnv("AVATAR_FONT", "", baseLog); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			serviceLog.Warn("Failed to read avatar font, rendering without initials", "path", path, "error", err)
		} else if f, err := truetype.Parse(raw); err != nil {
			serviceLog.Warn("Failed to parse avatar font, rendering without initials", "path", path, "error", err)
		} else {
			parsed = f
		}
	}
	return &avatarService{font: parsed, log: serviceLog}
}

// Render draws a circular avatar with the employee's initials. The same key
// always selects the same background color.
func (s *avatarService) Render(name, key string, size int) ([]byte, error) {
	if size <= 0 || size > 1024 {
		size = 256
	}

	dc := gg.NewContext(size, size)
	half := float64(size) / 2

	dc.DrawCircle(half, half, half)
	dc.Clip()
	dc.SetHexColor(pickColor(key))
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	if s.font != nil {
		face := truetype.NewFace(s.font, &truetype.Options{
			Size:    float64(size) * 0.42,
			Hinting: font.HintingFull,
		})
		dc.SetFontFace(face)
		dc.SetHexColor("#FFFFFF")
		dc.DrawStringAnchored(initials(name), half, half, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode avatar: %w", err)
	}
	return buf.Bytes(), nil
}

func initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(firstRune(parts[0]))
	default:
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[len(parts)-1]))
	}
}

func firstRune(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

func pickColor(key string) string {
	h := fnv.New32a()
	h.Write([]byte(key))
	return avatarPalette[int(h.Sum32())%len(avatarPalette)]
}
