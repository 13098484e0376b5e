package translator

import (
	"context"
)

// SourceAuto indica que o serviço remoto deve inferir o idioma de origem
const SourceAuto = "auto"

// Translator converte texto entre idiomas via serviço remoto.
// Não há fallback local: qualquer falha é devolvida ao chamador,
// que decide se recupera ou propaga.
type Translator interface {
	// Translate traduz o texto do idioma de origem (ou "auto") para o destino
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
