package authenticating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/apeiros/support-dashboard-api/infrastructure/repository/mocks"
	"github.com/apeiros/support-dashboard-api/internal/config"
	"github.com/apeiros/support-dashboard-api/internal/domain"
	"github.com/apeiros/support-dashboard-api/pkg/apiErrors"
)

func newTestAuthService(ctrl *gomock.Controller) (*Service, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{
		userRepo: userRepo,
		cfg:      &config.Config{SecretKey: "test-secret"},
	}
	return service, userRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "login com credenciais válidas emite token",
			email:    "Suporte@Apeiros.in ",
			password: "Sup0rte!2024",
			setup: func(userRepo *mocks.MockUserRepository) {
				// O email é normalizado antes da consulta
				userRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "suporte@apeiros.in").
					Return(&domain.User{
						ID:           "u1",
						Name:         "Suporte",
						Email:        "suporte@apeiros.in",
						PasswordHash: hashPassword(t, "Sup0rte!2024"),
						Active:       true,
						RoleID:       3,
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "senha incorreta falha com credenciais inválidas",
			email:    "suporte@apeiros.in",
			password: "errada",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "suporte@apeiros.in").
					Return(&domain.User{
						ID:           "u1",
						PasswordHash: hashPassword(t, "Sup0rte!2024"),
						Active:       true,
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "usuário desativado não pode logar",
			email:    "suporte@apeiros.in",
			password: "Sup0rte!2024",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "suporte@apeiros.in").
					Return(&domain.User{
						ID:           "u1",
						PasswordHash: hashPassword(t, "Sup0rte!2024"),
						Active:       false,
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "usuário inexistente",
			email:    "ninguem@apeiros.in",
			password: "qualquer",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail(gomock.Any(), "ninguem@apeiros.in").
					Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:     "email vazio falha sem consultar o banco",
			email:    "",
			password: "qualquer",
			setup:    func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, userRepo := newTestAuthService(ctrl)
			tt.setup(userRepo)

			token, err := service.LoginUser(context.Background(), tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestAuthService(ctrl)

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "suporte@apeiros.in").
		Return(&domain.User{
			ID:           "u1",
			Name:         "Suporte",
			Email:        "suporte@apeiros.in",
			PasswordHash: hashPassword(t, "Sup0rte!2024"),
			Active:       true,
			RoleID:       2,
		}, nil)

	token, err := service.LoginUser(context.Background(), "suporte@apeiros.in", "Sup0rte!2024")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, 2, claims.UserRoleID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestAuthService(ctrl)

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "suporte@apeiros.in").
		Return(&domain.User{
			ID:           "u1",
			PasswordHash: hashPassword(t, "Sup0rte!2024"),
			Active:       true,
		}, nil)

	token, err := service.LoginUser(context.Background(), "suporte@apeiros.in", "Sup0rte!2024")
	require.NoError(t, err)

	otherService := &Service{cfg: &config.Config{SecretKey: "outro-segredo"}}

	claims, err := otherService.ValidateToken(token)

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	t.Run("usuário novo nasce desativado com role de suporte", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestAuthService(ctrl)

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "novo@apeiros.in").
			Return(nil, nil)

		userRepo.EXPECT().
			CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.NotEmpty(t, user.ID)
				assert.Equal(t, 3, user.RoleID)
				assert.False(t, user.Active)
				// A senha nunca é persistida em claro
				assert.NotEqual(t, "S3nha!Forte", user.PasswordHash)
				return user, nil
			})

		user, err := service.CreateUser(context.Background(), &domain.User{
			Name:         "Novo Usuário",
			Email:        "Novo@Apeiros.in",
			PasswordHash: "S3nha!Forte",
		})

		require.NoError(t, err)
		assert.Equal(t, "novo@apeiros.in", user.Email)
	})

	t.Run("email já cadastrado é rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestAuthService(ctrl)

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "existente@apeiros.in").
			Return(&domain.User{ID: "u1"}, nil)

		user, err := service.CreateUser(context.Background(), &domain.User{
			Name:         "Duplicado",
			Email:        "existente@apeiros.in",
			PasswordHash: "S3nha!Forte",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("senha fraca é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestAuthService(ctrl)

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), "novo@apeiros.in").
			Return(nil, nil)

		user, err := service.CreateUser(context.Background(), &domain.User{
			Name:         "Novo Usuário",
			Email:        "novo@apeiros.in",
			PasswordHash: "12345678",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("senha atual incorreta é rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestAuthService(ctrl)

		userRepo.EXPECT().
			GetUserByID(gomock.Any(), "u1").
			Return(&domain.User{
				ID:           "u1",
				PasswordHash: hashPassword(t, "Atual!123"),
			}, nil)

		err := service.ChangePassword(context.Background(), "u1", "errada", "Nov4!Senha")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("troca válida persiste o novo hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, userRepo := newTestAuthService(ctrl)

		userRepo.EXPECT().
			GetUserByID(gomock.Any(), "u1").
			Return(&domain.User{
				ID:           "u1",
				PasswordHash: hashPassword(t, "Atual!123"),
			}, nil)

		userRepo.EXPECT().
			UpdatePassword(gomock.Any(), "u1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, passwordHash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("Nov4!Senha")))
				return nil
			})

		err := service.ChangePassword(context.Background(), "u1", "Atual!123", "Nov4!Senha")

		require.NoError(t, err)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service := &Service{cfg: &config.Config{SecretKey: "test-secret"}}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "senha forte", password: "Sup0rte!2024", wantErr: false},
		{name: "muito curta", password: "Ab1!", wantErr: true},
		{name: "sem maiúscula", password: "sup0rte!2024", wantErr: true},
		{name: "sem número", password: "Suporte!forte", wantErr: true},
		{name: "sem caractere especial", password: "Sup0rte2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// Garante que os códigos de API ficam disponíveis nos erros enriquecidos
func TestAuthErrorCode(t *testing.T) {
	err := NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "u1", "Senha incorreta")

	assert.Equal(t, apiErrors.ErrInvalidCredentials, err.Code)
	assert.Equal(t, "u1", err.UserID)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
