package pipeline

import (
	"os"
	"strconv"
	"strings"
)

// DefaultUserName é o nome usado quando o chamador não identifica o participante
const DefaultUserName = "User"

// FallbackReply é a resposta fixa usada quando o bot externo falha.
// É mantida em inglês e localizada pelo mesmo pivô de tradução da resposta normal.
const FallbackReply = "I am sorry, the assistant is unavailable right now. Please try again in a moment."

// Config contém as configurações do pipeline de conversa
type Config struct {
	// EnableTranslationPivot controla o pivô por inglês: quando ativo,
	// a entrada é traduzida para inglês antes do bot e a resposta é
	// traduzida de volta para o idioma detectado
	EnableTranslationPivot bool
}

// ConfigFromEnv monta a configuração a partir de variáveis de ambiente
func ConfigFromEnv() Config {
	pivot := true
	if raw := strings.TrimSpace(os.Getenv("CHAT_TRANSLATION_PIVOT")); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			pivot = value
		}
	}

	return Config{EnableTranslationPivot: pivot}
}
