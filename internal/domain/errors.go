package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrForbidden     = errors.New("operação não permitida")
	ErrUnauthorized  = errors.New("não autenticado")
	ErrNotFound      = errors.New("registro não existe mais")
	ErrNoData        = errors.New("nada para exportar")
	ErrConfiguration = errors.New("erro de configuração")
)
