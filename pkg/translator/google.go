package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/logger"
)

// Erros específicos do tradutor
var (
	ErrTranslationFailed  = errors.New("falha na chamada ao serviço de tradução")
	ErrUnexpectedResponse = errors.New("resposta do serviço de tradução em formato inesperado")
)

const defaultBaseURL = "https://translate.googleapis.com/translate_a/single"

// Config contém as configurações do cliente de tradução
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// ConfigFromEnv monta a configuração a partir de variáveis de ambiente
func ConfigFromEnv() Config {
	baseURL := strings.TrimSpace(os.Getenv("TRANSLATOR_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := 15 * time.Second
	if raw := strings.TrimSpace(os.Getenv("TRANSLATOR_TIMEOUT_SECONDS")); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	return Config{BaseURL: baseURL, Timeout: timeout}
}

// GoogleTranslator implementa Translator usando o endpoint web do Google Translate
type GoogleTranslator struct {
	config Config
	client *http.Client
	logger logger.Logger
}

// NewGoogleTranslator cria uma nova instância de GoogleTranslator
func NewGoogleTranslator(config Config, log logger.Logger) *GoogleTranslator {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}

	return &GoogleTranslator{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: log,
	}
}

// Translate implementa Translator.Translate
func (t *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if sourceLang == "" {
		sourceLang = SourceAuto
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	endpoint := t.config.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Error("Erro na chamada do serviço de tradução", "error", err)
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		t.logger.Error("Serviço de tradução retornou erro",
			"status", resp.Status,
			"target", targetLang)
		return "", fmt.Errorf("%w: status %d", ErrTranslationFailed, resp.StatusCode)
	}

	translated, err := parseResponse(body)
	if err != nil {
		return "", err
	}

	return translated, nil
}

// parseResponse extrai o texto traduzido da resposta do endpoint.
// O formato é uma lista aninhada: o primeiro elemento contém os segmentos
// traduzidos, cada um com o texto resultante na primeira posição.
func parseResponse(body []byte) (string, error) {
	var payload []interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	if len(payload) == 0 {
		return "", ErrUnexpectedResponse
	}

	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", ErrUnexpectedResponse
	}

	var builder strings.Builder
	for _, segment := range segments {
		parts, ok := segment.([]interface{})
		if !ok || len(parts) == 0 {
			return "", ErrUnexpectedResponse
		}
		text, ok := parts[0].(string)
		if !ok {
			return "", ErrUnexpectedResponse
		}
		builder.WriteString(text)
	}

	if builder.Len() == 0 {
		return "", ErrUnexpectedResponse
	}

	return builder.String(), nil
}
