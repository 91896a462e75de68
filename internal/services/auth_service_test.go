package services

import (
	"context"
	"testing"
	"time"

	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(users *mocks.MockUserRepository) *AuthService {
	return NewAuthService(users, "test-secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("hashes the password and issues a verifiable token", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", "jane@example.com").Return(nil, nil)
		userRepo.On("Create", mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.User).ID = 7
		})

		service := newTestAuthService(userRepo)
		user, token, err := service.Register(context.Background(), RegisterInput{
			Email:     "Jane@Example.com",
			Password:  "hunter22",
			FirstName: "Jane",
			LastName:  "Doe",
		})

		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.NotEqual(t, "hunter22", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))

		claims, err := service.VerifyToken(token)
		assert.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.Equal(t, domain.RoleCustomer, claims.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", "jane@example.com").Return(&domain.User{ID: 1, Email: "jane@example.com"}, nil)

		service := newTestAuthService(userRepo)
		_, _, err := service.Register(context.Background(), RegisterInput{
			Email: "jane@example.com", Password: "hunter22", FirstName: "Jane", LastName: "Doe",
		})

		assert.Error(t, err)
		assert.Equal(t, domain.KindDuplicateField, domain.KindOf(err))
		userRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("short password", func(t *testing.T) {
		service := newTestAuthService(new(mocks.MockUserRepository))
		_, _, err := service.Register(context.Background(), RegisterInput{
			Email: "jane@example.com", Password: "abc", FirstName: "Jane", LastName: "Doe",
		})

		assert.Error(t, err)
		assert.Equal(t, domain.KindInvalidArgument, domain.KindOf(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	stored := &domain.User{ID: 7, Email: "jane@example.com", Password: string(hash), Role: domain.RoleAdmin}

	t.Run("valid credentials", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", "jane@example.com").Return(stored, nil)

		service := newTestAuthService(userRepo)
		user, token, err := service.Login(context.Background(), "jane@example.com", "hunter22")

		assert.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)

		claims, err := service.VerifyToken(token)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", "jane@example.com").Return(stored, nil)

		service := newTestAuthService(userRepo)
		_, _, err := service.Login(context.Background(), "jane@example.com", "wrong")

		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(mocks.MockUserRepository)
		userRepo.On("FindByEmail", "ghost@example.com").Return(nil, nil)

		service := newTestAuthService(userRepo)
		_, _, err := service.Login(context.Background(), "ghost@example.com", "hunter22")

		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	service := newTestAuthService(new(mocks.MockUserRepository))

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.VerifyToken("not-a-token")
		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewAuthService(new(mocks.MockUserRepository), "other-secret", time.Hour)
		token, err := other.issueToken(&domain.User{ID: 1, Role: domain.RoleCustomer})
		assert.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})
}
