package model

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited indica que a API do Trello retornou 429
	ErrRateLimited = errors.New("rate limit excedido na API do Trello")

	// ErrUnauthorized indica key ou token inválido
	ErrUnauthorized = errors.New("key ou token do Trello inválido ou expirado")

	// ErrNotFound indica recurso não encontrado
	ErrNotFound = errors.New("recurso não encontrado no Trello")

	// ErrTimeout indica timeout na requisição
	ErrTimeout = errors.New("timeout na requisição para o Trello")
)

// HTTPError representa uma resposta de erro da API do Trello fora dos
// status com erro sentinela dedicado
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Body)
}

// IsHTTPError informa se o erro foi causado por uma resposta HTTP da API,
// em oposição a falhas de rede, timeout ou erros locais
func IsHTTPError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return true
	}
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrNotFound)
}
