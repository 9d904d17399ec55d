package request

// UserCreateRequest registers a profile; senha_temporaria is the initial
// password the user must change on first login.
type UserCreateRequest struct {
	Nome            string          `json:"nome" binding:"required"`
	Email           string          `json:"email" binding:"required"`
	TipoAcesso      string          `json:"tipo_acesso" binding:"required"`
	Permissoes      map[string]bool `json:"permissoes"`
	SenhaTemporaria string          `json:"senha_temporaria" binding:"required"`
}

type UserUpdateRequest struct {
	Nome       string          `json:"nome" binding:"required"`
	Email      string          `json:"email" binding:"required"`
	TipoAcesso string          `json:"tipo_acesso" binding:"required"`
	Permissoes map[string]bool `json:"permissoes"`
}

type UserPermissionsRequest struct {
	Permissoes map[string]bool `json:"permissoes" binding:"required"`
}
