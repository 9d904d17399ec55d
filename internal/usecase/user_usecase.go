package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidUser       = errors.New("invalid user")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidAccessTier = errors.New("invalid access tier")
)

type UserInput struct {
	Nome       string
	Email      string
	TipoAcesso entities.AppRole
	Permissoes map[string]bool
}

// IUserUseCase exposes profile and permission management.

type IUserUseCase interface {
	CreateUser(ctx context.Context, in UserInput, temporaryPassword string) (entities.Profile, error)
	UpdateUser(ctx context.Context, id string, in UserInput) (entities.Profile, error)
	SetPermissions(ctx context.Context, id string, permissoes map[string]bool) (entities.Profile, error)
	GetUser(ctx context.Context, id string) (entities.Profile, error)
	ListUsers(ctx context.Context) ([]entities.Profile, error)
}

type UserUseCase struct {
	repo interfaces.IProfileRepository
	now  func() time.Time
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IProfileRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

// CreateUser registers a profile with a temporary password; the user is
// expected to change it on first login (senha_temporaria stays true
// until the reset flow clears it).
func (u *UserUseCase) CreateUser(ctx context.Context, in UserInput, temporaryPassword string) (entities.Profile, error) {
	p, err := profileFromInput(in)
	if err != nil {
		return entities.Profile{}, err
	}
	if strings.TrimSpace(temporaryPassword) == "" {
		return entities.Profile{}, ErrInvalidUser
	}

	if existing, err := u.repo.GetByEmail(ctx, p.Email); err != nil {
		return entities.Profile{}, err
	} else if existing.ID != "" {
		return entities.Profile{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return entities.Profile{}, err
	}

	now := u.now().UTC()
	p.ID = uuid.NewString()
	p.SenhaTemporaria = true
	p.PasswordHash = string(hash)
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Profile{}, err
	}
	log.Info().Str("user_id", created.ID).Str("tipo_acesso", string(created.TipoAcesso)).Msg("user created")
	return created, nil
}

func (u *UserUseCase) UpdateUser(ctx context.Context, id string, in UserInput) (entities.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidUserID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Profile{}, err
	}
	if existing.ID == "" {
		return entities.Profile{}, ErrUserNotFound
	}

	p, err := profileFromInput(in)
	if err != nil {
		return entities.Profile{}, err
	}
	p.ID = existing.ID
	p.SenhaTemporaria = existing.SenhaTemporaria
	p.PasswordHash = existing.PasswordHash
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = u.now().UTC()

	return u.repo.Update(ctx, p)
}

func (u *UserUseCase) SetPermissions(ctx context.Context, id string, permissoes map[string]bool) (entities.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidUserID
	}

	updated, err := u.repo.SetPermissions(ctx, id, permissoes)
	if err != nil {
		return entities.Profile{}, err
	}
	if updated.ID == "" {
		return entities.Profile{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) GetUser(ctx context.Context, id string) (entities.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Profile{}, ErrInvalidUserID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.ID == "" {
		return entities.Profile{}, ErrUserNotFound
	}
	return p, nil
}

func (u *UserUseCase) ListUsers(ctx context.Context) ([]entities.Profile, error) {
	return u.repo.List(ctx)
}

func profileFromInput(in UserInput) (entities.Profile, error) {
	nome := strings.TrimSpace(in.Nome)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if nome == "" || email == "" || !strings.Contains(email, "@") {
		return entities.Profile{}, ErrInvalidUser
	}
	switch in.TipoAcesso {
	case entities.RoleAdmin, entities.RoleCommon:
	default:
		return entities.Profile{}, ErrInvalidAccessTier
	}
	return entities.Profile{
		Nome:       nome,
		Email:      email,
		TipoAcesso: in.TipoAcesso,
		Permissoes: in.Permissoes,
	}, nil
}
