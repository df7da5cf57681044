package access

import (
	"fmt"

	"github.com/jhoicas/clube-api/internal/domain"
)

// Capability nomeia uma tela ou ação sujeita à política de acesso.
type Capability string

// Capacidades conhecidas. Para estender, acrescente uma linha em policies.
const (
	ViewAdminPanel          Capability = "view_admin_panel"
	ViewCashFlow            Capability = "view_cashflow"
	ViewDirectorMinutes     Capability = "view_director_minutes"
	ViewPlayerDetailedStats Capability = "view_player_detailed_stats"
	ApplyMemberDiscount     Capability = "apply_member_discount"
	LikeNews                Capability = "like_news"
	CommentNews             Capability = "comment_news"
)

// All lista as capacidades na ordem de exibição.
var All = []Capability{
	ViewAdminPanel,
	ViewCashFlow,
	ViewDirectorMinutes,
	ViewPlayerDetailedStats,
	ApplyMemberDiscount,
	LikeNews,
	CommentNews,
}

// ParseCapability converte um nome recebido de fora. Nome desconhecido é erro de configuração.
func ParseCapability(name string) (Capability, error) {
	c := Capability(name)
	if _, ok := policies[c]; !ok {
		return "", unknownCapability(c)
	}
	return c, nil
}

func unknownCapability(c Capability) error {
	return fmt.Errorf("%w: capacidade desconhecida %q", domain.ErrConfiguration, string(c))
}
