package language

import (
	"errors"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// ErrUndetermined indica que o idioma do texto não pôde ser identificado
var ErrUndetermined = errors.New("idioma do texto não pôde ser identificado")

// Detector identifica o idioma de um texto.
// A detecção é determinística: o mesmo texto produz sempre o mesmo código.
type Detector interface {
	// Detect retorna o código ISO 639-1 (minúsculo) do idioma detectado
	Detect(text string) (string, error)
}

// Idiomas atendidos pelo assistente. Um conjunto fechado mantém a
// detecção estável e reduz o custo de carregamento dos modelos.
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Italian,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Romanian,
}

type linguaDetector struct {
	detector lingua.LanguageDetector
}

// NewDetector cria um detector de idiomas baseado no lingua-go
func NewDetector() Detector {
	return &linguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(supportedLanguages...).
			Build(),
	}
}

// Detect implementa Detector.Detect
func (d *linguaDetector) Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrUndetermined
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", ErrUndetermined
	}

	return strings.ToLower(lang.IsoCode639_1().String()), nil
}
