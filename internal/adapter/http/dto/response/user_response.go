package response

import (
	"time"

	"sobujigangas/internal/domain/entities"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID              string          `json:"id"`
	Nome            string          `json:"nome"`
	Email           string          `json:"email"`
	TipoAcesso      string          `json:"tipo_acesso"`
	Permissoes      map[string]bool `json:"permissoes,omitempty"`
	SenhaTemporaria bool            `json:"senha_temporaria"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func FromProfile(p entities.Profile) UserResponse {
	return UserResponse{
		ID:              p.ID,
		Nome:            p.Nome,
		Email:           p.Email,
		TipoAcesso:      string(p.TipoAcesso),
		Permissoes:      p.Permissoes,
		SenhaTemporaria: p.SenhaTemporaria,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromProfiles(ps []entities.Profile) []UserResponse {
	out := make([]UserResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProfile(p))
	}
	return out
}
