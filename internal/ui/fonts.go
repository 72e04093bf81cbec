// internal/ui/fonts.go
package ui

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-fruitopian-defender/internal/config"
)

// Faces — пара шрифтов UI: заголовочный и обычный.
type Faces struct {
	Title   font.Face
	Regular font.Face
}

// MustLoadFaces загружает встроенный шрифт goregular.
// Ошибка здесь — поломанная сборка, продолжать бессмысленно.
func MustLoadFaces() *Faces {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.TitleFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	regular, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    config.RegularFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	return &Faces{Title: title, Regular: regular}
}
