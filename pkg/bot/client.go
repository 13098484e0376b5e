package bot

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/logger"
)

// ErrMissingBaseURL indica que a URL do backend conversacional não foi configurada
var ErrMissingBaseURL = errors.New("BOT_API_URL não encontrada nas variáveis de ambiente")

const (
	textEndpoint  = "/run/chat"
	voiceEndpoint = "/run/voice"
)

// Config contém as configurações do cliente do bot externo
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// ConfigFromEnv monta a configuração a partir de variáveis de ambiente
func ConfigFromEnv() Config {
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("BOT_TIMEOUT_SECONDS")); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}

	return Config{
		BaseURL: strings.TrimRight(strings.TrimSpace(os.Getenv("BOT_API_URL")), "/"),
		Timeout: timeout,
	}
}

// VoiceResult é o resultado normalizado do endpoint de voz do bot externo
type VoiceResult struct {
	Transcript string
	Reply      string
	AudioURL   string
}

// Client é o cliente HTTP do backend conversacional externo.
// As operações são de disparo único: não há retry interno.
type Client struct {
	config Config
	client *http.Client
	logger logger.Logger
}

// NewClient cria um novo cliente do bot externo
func NewClient(config Config, log logger.Logger) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: log,
	}, nil
}

type apiRequest struct {
	Data []interface{} `json:"data"`
}

type apiResponse struct {
	Data  []interface{} `json:"data"`
	Error string        `json:"error,omitempty"`
}

type audioPayload struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// SendText envia uma mensagem de texto e retorna a resposta do bot
func (c *Client) SendText(ctx context.Context, message string) (string, error) {
	data, err := c.call(ctx, textEndpoint, apiRequest{Data: []interface{}{message}})
	if err != nil {
		return "", err
	}

	if len(data) != 1 {
		return "", newExternalServiceError("sendText",
			fmt.Errorf("esperado 1 elemento na resposta, recebido %d", len(data)))
	}

	reply, err := asText(data[0])
	if err != nil {
		return "", newExternalServiceError("sendText", err)
	}

	return reply, nil
}

// SendVoice envia o áudio gravado e retorna transcrição, resposta e
// referência ao áudio de resposta. O resultado remoto precisa ter
// exatamente três elementos na ordem esperada.
func (c *Client) SendVoice(ctx context.Context, audioPath string) (*VoiceResult, error) {
	content, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, newExternalServiceError("sendVoice", fmt.Errorf("erro ao ler áudio: %w", err))
	}

	payload := audioPayload{
		Name: filepath.Base(audioPath),
		Data: "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(content),
	}

	data, err := c.call(ctx, voiceEndpoint, apiRequest{Data: []interface{}{payload}})
	if err != nil {
		return nil, err
	}

	if len(data) != 3 {
		return nil, newExternalServiceError("sendVoice",
			fmt.Errorf("esperados 3 elementos na resposta, recebidos %d", len(data)))
	}

	transcript, err := asText(data[0])
	if err != nil {
		return nil, newExternalServiceError("sendVoice", err)
	}

	reply, err := asText(data[1])
	if err != nil {
		return nil, newExternalServiceError("sendVoice", err)
	}

	audioURL, err := asAudioRef(data[2])
	if err != nil {
		return nil, newExternalServiceError("sendVoice", err)
	}

	return &VoiceResult{
		Transcript: transcript,
		Reply:      reply,
		AudioURL:   audioURL,
	}, nil
}

// call executa a chamada HTTP e devolve o campo data da resposta
func (c *Client) call(ctx context.Context, endpoint string, reqBody apiRequest) ([]interface{}, error) {
	op := strings.TrimPrefix(endpoint, "/run/")

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return nil, newExternalServiceError(op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+endpoint, bytes.NewBuffer(reqJSON))
	if err != nil {
		return nil, newExternalServiceError(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Erro na chamada ao bot externo", "endpoint", endpoint, "error", err)
		return nil, newExternalServiceError(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newExternalServiceError(op, err)
	}

	c.logger.Debug("Resposta do bot externo", "endpoint", endpoint, "statusCode", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Bot externo retornou erro",
			"endpoint", endpoint,
			"status", resp.Status)
		return nil, newExternalServiceError(op, fmt.Errorf("status %d", resp.StatusCode))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, newExternalServiceError(op, fmt.Errorf("resposta inválida: %w", err))
	}

	if apiResp.Error != "" {
		return nil, newExternalServiceError(op, errors.New(apiResp.Error))
	}

	return apiResp.Data, nil
}

// asText exige que o elemento da resposta seja uma string
func asText(value interface{}) (string, error) {
	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("elemento da resposta não é texto: %T", value)
	}
	return text, nil
}

// asAudioRef normaliza a referência de áudio, que o serviço remoto devolve
// ora como string, ora como objeto com campo url ou name
func asAudioRef(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case map[string]interface{}:
		if url, ok := v["url"].(string); ok && url != "" {
			return url, nil
		}
		if name, ok := v["name"].(string); ok && name != "" {
			return name, nil
		}
		return "", errors.New("objeto de áudio sem campo url ou name")
	default:
		return "", fmt.Errorf("referência de áudio em formato desconhecido: %T", value)
	}
}
