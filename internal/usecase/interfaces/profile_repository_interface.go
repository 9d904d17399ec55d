package interfaces

import (
	"context"

	"sobujigangas/internal/domain/entities"
)

// IProfileRepository abstracts DynamoDB persistence for Profile.
// Lookups that miss return a zero-ID profile, not an error.

type IProfileRepository interface {
	Create(ctx context.Context, p entities.Profile) (entities.Profile, error)
	Update(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	GetByEmail(ctx context.Context, email string) (entities.Profile, error)
	List(ctx context.Context) ([]entities.Profile, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, temporary bool) error
	SetPermissions(ctx context.Context, id string, permissoes map[string]bool) (entities.Profile, error)
}

// IPasswordResetRepository abstracts DynamoDB persistence for the
// single-use recovery codes.

type IPasswordResetRepository interface {
	Create(ctx context.Context, c entities.PasswordResetCode) (entities.PasswordResetCode, error)
	FindActive(ctx context.Context, email, code string) (entities.PasswordResetCode, error)
	InvalidateActive(ctx context.Context, email string) error
	MarkUsed(ctx context.Context, id string) error
}
