package entities

import "time"

// AppRole is the coarse access tier of a profile.

type AppRole string

const (
	RoleAdmin  AppRole = "admin"
	RoleCommon AppRole = "common"
)

// Profile is a system user (profiles table, PK: id, GSI email-index).
//
// Permissoes holds the fine-grained screen permissions (cadastro,
// pedidos, vendas, alertas, ...). Admins implicitly hold every
// permission. PasswordHash is a bcrypt hash and never leaves the
// service.

type Profile struct {
	ID              string          `json:"id"`
	Nome            string          `json:"nome"`
	Email           string          `json:"email"`
	TipoAcesso      AppRole         `json:"tipo_acesso"`
	Permissoes      map[string]bool `json:"permissoes,omitempty"`
	SenhaTemporaria bool            `json:"senha_temporaria"`
	PasswordHash    string          `json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// HasPermission reports whether the profile may use a given screen.
func (p Profile) HasPermission(permission string) bool {
	if p.TipoAcesso == RoleAdmin {
		return true
	}
	return p.Permissoes[permission]
}

// PasswordResetCode is a single-use 6-digit recovery code
// (password_reset_codes table, PK: id, GSI email-index).
type PasswordResetCode struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// IsUsable reports whether the code can still validate a reset.
func (c PasswordResetCode) IsUsable(now time.Time) bool {
	return !c.Used && now.Before(c.ExpiresAt)
}
