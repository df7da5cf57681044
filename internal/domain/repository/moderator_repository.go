package repository

import "context"

// ModeratorRepository consulta a lista de moderadores do fluxo de caixa.
// A gestão da lista fica fora deste serviço.
type ModeratorRepository interface {
	IsModerator(ctx context.Context, userID string) (bool, error)
}
