package services

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/font"

	"github.com/squaredcircle/promoter-backend/internal/logger"
)

// AvatarService renders initials placeholder avatars for roster
// people. Output lands under the local media directory; the stored
// path is relative so the media root can move.
type AvatarService interface {
	GenerateInitialsAvatar(initialsSource string, id uuid.UUID) (string, error)
}

type avatarService struct {
	log      *logger.Logger
	mediaDir string
	palette  []color.NRGBA
	fontFace font.Face
}

// NewAvatarService loads the TTF named by AVATAR_FONT. MEDIA_DIR
// defaults to ./media.
func NewAvatarService(log *logger.Logger) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	fontPath := strings.TrimSpace(os.Getenv("AVATAR_FONT"))
	if fontPath == "" {
		return nil, fmt.Errorf("Env var AVATAR_FONT is empty")
	}
	face, err := loadFontFace(fontPath, 206)
	if err != nil {
		return nil, fmt.Errorf("could not load avatar font: %w", err)
	}

	mediaDir := strings.TrimSpace(os.Getenv("MEDIA_DIR"))
	if mediaDir == "" {
		mediaDir = "media"
	}
	if err := os.MkdirAll(filepath.Join(mediaDir, "avatar"), 0o755); err != nil {
		return nil, fmt.Errorf("could not create media dir: %w", err)
	}

	return &avatarService{
		log:      serviceLog,
		mediaDir: mediaDir,
		palette: []color.NRGBA{
			{R: 0x8B, G: 0x1E, B: 0x3F, A: 0xFF},
			{R: 0x1F, G: 0x4E, B: 0x79, A: 0xFF},
			{R: 0x2E, G: 0x59, B: 0x39, A: 0xFF},
			{R: 0x6B, G: 0x3F, B: 0xA0, A: 0xFF},
			{R: 0xB3, G: 0x5C, B: 0x00, A: 0xFF},
			{R: 0x3C, G: 0x3C, B: 0x3C, A: 0xFF},
		},
		fontFace: face,
	}, nil
}

func (as *avatarService) GenerateInitialsAvatar(initialsSource string, id uuid.UUID) (string, error) {
	const size = 512

	dc := gg.NewContext(size, size)

	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()

	dc.SetColor(as.pickColor(id))
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	initials := computeInitials(initialsSource)

	dc.SetFontFace(as.fontFace)
	tw, th := dc.MeasureString(initials)
	cx, cy := float64(size)/2, float64(size)/2

	dc.SetColor(color.White)
	dc.DrawString(initials, cx-(tw/2)+5, cy+(th/2)-10)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	rel := filepath.Join("avatar", id.String()+".png")
	if err := os.WriteFile(filepath.Join(as.mediaDir, rel), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write avatar: %w", err)
	}
	return rel, nil
}

// pickColor hashes the id so an entity keeps the same color across
// regenerations.
func (as *avatarService) pickColor(id uuid.UUID) color.NRGBA {
	sum := sha256.Sum256(id[:])
	return as.palette[int(sum[0])%len(as.palette)]
}

// computeInitials takes the first letter of the first two words.
func computeInitials(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(fields[0][:1])
	default:
		return strings.ToUpper(fields[0][:1]) + strings.ToUpper(fields[1][:1])
	}
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}
