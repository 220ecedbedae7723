package usecases

import (
	"context"
	"fmt"

	"servicedesk/internal/domain/identity"
	"servicedesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc               func(ctx context.Context, user *identity.User) error
	UpdateFunc             func(ctx context.Context, user *identity.User) error
	GetByIDFunc            func(ctx context.Context, id uint) (*identity.User, error)
	GetByUsernameFunc      func(ctx context.Context, username string) (*identity.User, error)
	ListFunc               func(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error)
	GetRoleNamesFunc       func(ctx context.Context, userID uint) ([]string, error)
	ReplaceRolesFunc       func(ctx context.Context, userID uint, roleIDs []uint) error
	GetStaffIDFunc         func(ctx context.Context, userID uint) (*uint, error)
	GetUserIDByStaffIDFunc func(ctx context.Context, staffID uint) (*uint, error)
	ReplaceStaffLinkFunc   func(ctx context.Context, userID uint, staffID *uint) error
}

func (m *mockUserRepository) Save(ctx context.Context, user *identity.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *identity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*identity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) GetRoleNames(ctx context.Context, userID uint) ([]string, error) {
	if m.GetRoleNamesFunc != nil {
		return m.GetRoleNamesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) ReplaceRoles(ctx context.Context, userID uint, roleIDs []uint) error {
	if m.ReplaceRolesFunc != nil {
		return m.ReplaceRolesFunc(ctx, userID, roleIDs)
	}
	return nil
}

func (m *mockUserRepository) GetStaffID(ctx context.Context, userID uint) (*uint, error) {
	if m.GetStaffIDFunc != nil {
		return m.GetStaffIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetUserIDByStaffID(ctx context.Context, staffID uint) (*uint, error) {
	if m.GetUserIDByStaffIDFunc != nil {
		return m.GetUserIDByStaffIDFunc(ctx, staffID)
	}
	return nil, nil
}

func (m *mockUserRepository) ReplaceStaffLink(ctx context.Context, userID uint, staffID *uint) error {
	if m.ReplaceStaffLinkFunc != nil {
		return m.ReplaceStaffLinkFunc(ctx, userID, staffID)
	}
	return nil
}

type mockVerifier struct {
	VerifyFunc func(password, hash string) error
}

func (m *mockVerifier) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if hash != "hash:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockIssuer struct {
	GenerateFunc func(userID uint, username string, roles []string, staffID *uint) (string, error)
}

func (m *mockIssuer) Generate(userID uint, username string, roles []string, staffID *uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, roles, staffID)
	}
	return "signed-token", nil
}

func (m *mockIssuer) ExpSeconds() int { return 86400 }

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
