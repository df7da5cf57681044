package dto

// UpdateProfileRequest body para PATCH /api/me/profile. Papel não é editável aqui.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=120"`
}

// ChangeRoleRequest body para PATCH /api/admin/users/:id/role.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=usuario socio jogador admin"`
}

// SetDirectorRequest body para PATCH /api/admin/users/:id/director.
type SetDirectorRequest struct {
	Diretor *bool `json:"diretor" validate:"required"`
}

// CapabilitiesResponse o que a sessão pode ver/fazer.
type CapabilitiesResponse struct {
	UserID       string          `json:"user_id,omitempty"`
	Role         string          `json:"role,omitempty"`
	Diretor      bool            `json:"diretor"`
	Capabilities map[string]bool `json:"capabilities"`
}
