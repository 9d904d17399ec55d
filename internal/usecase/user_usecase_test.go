package usecase

import (
	"context"
	"errors"
	"testing"

	"sobujigangas/internal/domain/entities"
	mock_interfaces "sobujigangas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserUseCase_CreateUser(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.CreateUser(context.Background(), UserInput{Nome: "Ana"}, "Temp@123")
		if !errors.Is(err, ErrInvalidUser) {
			t.Fatalf("expected ErrInvalidUser, got %v", err)
		}
	})

	t.Run("invalid access tier", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.CreateUser(context.Background(), UserInput{
			Nome:       "Ana",
			Email:      "ana@loja.com",
			TipoAcesso: entities.AppRole("root"),
		}, "Temp@123")
		if !errors.Is(err, ErrInvalidAccessTier) {
			t.Fatalf("expected ErrInvalidAccessTier, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@loja.com").Return(entities.Profile{ID: "u1"}, nil)

		_, err := uc.CreateUser(context.Background(), UserInput{
			Nome:       "Ana",
			Email:      "Ana@Loja.com",
			TipoAcesso: entities.RoleCommon,
		}, "Temp@123")
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewUserUseCase(repo)
		uc.now = fixedNow

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@loja.com").Return(entities.Profile{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) {
				if p.ID == "" || p.Email != "ana@loja.com" || p.TipoAcesso != entities.RoleAdmin {
					t.Fatalf("unexpected profile: %+v", p)
				}
				if !p.SenhaTemporaria {
					t.Fatalf("new users must carry a temporary password")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("Temp@123")); err != nil {
					t.Fatalf("stored hash does not match the temporary password: %v", err)
				}
				return p, nil
			},
		)

		p, err := uc.CreateUser(context.Background(), UserInput{
			Nome:       " Ana ",
			Email:      " Ana@Loja.com ",
			TipoAcesso: entities.RoleAdmin,
			Permissoes: map[string]bool{"vendas": true},
		}, "Temp@123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Nome != "Ana" || !p.Permissoes["vendas"] {
			t.Fatalf("unexpected profile: %+v", p)
		}
	})

	t.Run("blank temporary password", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.CreateUser(context.Background(), UserInput{
			Nome:       "Ana",
			Email:      "ana@loja.com",
			TipoAcesso: entities.RoleCommon,
		}, "   ")
		if !errors.Is(err, ErrInvalidUser) {
			t.Fatalf("expected ErrInvalidUser, got %v", err)
		}
	})
}

func TestUserUseCase_UpdateUser(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Profile{}, nil)

		_, err := uc.UpdateUser(context.Background(), "ghost", UserInput{
			Nome: "Ana", Email: "ana@loja.com", TipoAcesso: entities.RoleCommon,
		})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("credentials survive the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewUserUseCase(repo)
		uc.now = fixedNow

		repo.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.Profile{
			ID:              "u1",
			PasswordHash:    "hash",
			SenhaTemporaria: true,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) {
				if p.ID != "u1" || p.PasswordHash != "hash" || !p.SenhaTemporaria {
					t.Fatalf("update must not touch credentials: %+v", p)
				}
				if p.Nome != "Ana Maria" {
					t.Fatalf("unexpected nome: %q", p.Nome)
				}
				return p, nil
			},
		)

		_, err := uc.UpdateUser(context.Background(), "u1", UserInput{
			Nome: "Ana Maria", Email: "ana@loja.com", TipoAcesso: entities.RoleCommon,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_SetPermissions(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().SetPermissions(gomock.Any(), "ghost", gomock.Any()).Return(entities.Profile{}, nil)

		_, err := uc.SetPermissions(context.Background(), "ghost", map[string]bool{"vendas": true})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("set success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewUserUseCase(repo)

		perms := map[string]bool{"vendas": true, "estoque": false}
		repo.EXPECT().SetPermissions(gomock.Any(), "u1", perms).Return(entities.Profile{
			ID: "u1", Permissoes: perms,
		}, nil)

		p, err := uc.SetPermissions(context.Background(), "u1", perms)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Permissoes["vendas"] || p.Permissoes["estoque"] {
			t.Fatalf("unexpected permissoes: %+v", p.Permissoes)
		}
	})
}

func TestUserUseCase_GetUser(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.GetUser(context.Background(), " ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Profile{}, nil)

		_, err := uc.GetUser(context.Background(), "ghost")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
