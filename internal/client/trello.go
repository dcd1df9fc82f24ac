package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cleberrangel/trello-card-cli/internal/logger"
	"github.com/cleberrangel/trello-card-cli/internal/model"
)

const (
	baseURL = "https://api.trello.com/1"

	// DefaultTimeout timeout padrão para requisições
	DefaultTimeout = 30 * time.Second
)

// Client é o cliente HTTP para a API do Trello
type Client struct {
	apiKey     string
	token      string
	baseURL    string
	httpClient *http.Client
}

// Option configura o cliente
type Option func(*Client)

// WithBaseURL substitui a URL base da API
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// NewClient cria um novo cliente Trello
func NewClient(apiKey, token string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		token:   token,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetMember busca o usuário autenticado, validando as credenciais
func (c *Client) GetMember(ctx context.Context) (*model.Member, error) {
	var member model.Member
	params := url.Values{"fields": {"username,fullName"}}
	if err := c.doGet(ctx, "members/me", params, &member); err != nil {
		return nil, fmt.Errorf("validar credenciais: %w", err)
	}
	return &member, nil
}

// GetBoards busca todos os quadros do usuário
func (c *Client) GetBoards(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	params := url.Values{"fields": {"name,id"}}
	if err := c.doGet(ctx, "members/me/boards", params, &boards); err != nil {
		return nil, fmt.Errorf("buscar quadros: %w", err)
	}
	return boards, nil
}

// GetLists busca todas as listas (colunas) de um quadro
func (c *Client) GetLists(ctx context.Context, boardID string) ([]model.List, error) {
	var lists []model.List
	endpoint := fmt.Sprintf("boards/%s/lists", boardID)
	params := url.Values{"fields": {"name,id"}}
	if err := c.doGet(ctx, endpoint, params, &lists); err != nil {
		return nil, fmt.Errorf("buscar listas: %w", err)
	}
	return lists, nil
}

// GetLabels busca todas as etiquetas de um quadro
func (c *Client) GetLabels(ctx context.Context, boardID string) ([]model.Label, error) {
	var labels []model.Label
	endpoint := fmt.Sprintf("boards/%s/labels", boardID)
	params := url.Values{"fields": {"name,color,id"}}
	if err := c.doGet(ctx, endpoint, params, &labels); err != nil {
		return nil, fmt.Errorf("buscar etiquetas: %w", err)
	}
	return labels, nil
}

// CreateLabel cria uma nova etiqueta em um quadro. Color vazio cria
// etiqueta sem cor
func (c *Client) CreateLabel(ctx context.Context, boardID, name, color string) (*model.Label, error) {
	data := url.Values{}
	data.Set("name", name)
	data.Set("idBoard", boardID)
	if color != "" {
		data.Set("color", color)
	}

	var label model.Label
	if err := c.doPost(ctx, "labels", data, &label); err != nil {
		return nil, fmt.Errorf("criar etiqueta: %w", err)
	}

	logger.Get(ctx).Info().
		Str("label_id", label.ID).
		Str("board_id", boardID).
		Str("color", color).
		Msg("Etiqueta criada")
	return &label, nil
}

// CreateCard cria um novo cartão em uma lista (coluna)
func (c *Client) CreateCard(ctx context.Context, listID, name, desc string, labelIDs []string) (*model.Card, error) {
	data := url.Values{}
	data.Set("idList", listID)
	data.Set("name", name)
	data.Set("desc", desc)
	if len(labelIDs) > 0 {
		data.Set("idLabels", strings.Join(labelIDs, ","))
	}

	var card model.Card
	if err := c.doPost(ctx, "cards", data, &card); err != nil {
		return nil, fmt.Errorf("criar cartão: %w", err)
	}

	logger.Get(ctx).Info().
		Str("card_id", card.ID).
		Str("list_id", listID).
		Int("labels", len(labelIDs)).
		Msg("Cartão criado")
	return &card, nil
}

// AddComment adiciona um comentário a um cartão
func (c *Client) AddComment(ctx context.Context, cardID, text string) (*model.Comment, error) {
	data := url.Values{}
	data.Set("text", text)

	var comment model.Comment
	endpoint := fmt.Sprintf("cards/%s/actions/comments", cardID)
	if err := c.doPost(ctx, endpoint, data, &comment); err != nil {
		return nil, fmt.Errorf("adicionar comentário: %w", err)
	}

	logger.Get(ctx).Info().
		Str("card_id", cardID).
		Msg("Comentário adicionado")
	return &comment, nil
}

// credParams retorna os parâmetros de credencial exigidos em toda requisição
func (c *Client) credParams() url.Values {
	v := url.Values{}
	v.Set("key", c.apiKey)
	v.Set("token", c.token)
	return v
}

// doGet executa GET em um endpoint e decodifica a resposta em result
func (c *Client) doGet(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	query := c.credParams()
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("criar request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, result)
}

// doPost executa POST com corpo form-encoded e decodifica a resposta em result
func (c *Client) doPost(ctx context.Context, endpoint string, data url.Values, result interface{}) error {
	body := c.credParams()
	for key, values := range data {
		for _, value := range values {
			body.Add(key, value)
		}
	}

	reqURL := fmt.Sprintf("%s/%s", c.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(body.Encode()))
	if err != nil {
		return fmt.Errorf("criar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	return c.do(req, result)
}

// do executa a requisição e trata os erros HTTP
func (c *Client) do(req *http.Request, result interface{}) error {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return model.ErrTimeout
		}
		return fmt.Errorf("executar request: %w", err)
	}
	defer resp.Body.Close()

	logger.Get(req.Context()).Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Requisição ao Trello concluída")

	// Tratamento de erros HTTP
	switch resp.StatusCode {
	case http.StatusOK:
		// OK, continua
	case http.StatusTooManyRequests:
		return model.ErrRateLimited
	case http.StatusUnauthorized:
		return model.ErrUnauthorized
	case http.StatusNotFound:
		return model.ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return &model.HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if result == nil {
		return nil
	}

	// Parse da resposta
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
