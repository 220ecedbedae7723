package usecases

import (
	"context"
	"strings"

	"servicedesk/internal/domain/identity"
	"servicedesk/internal/shared/authorization"
	"servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/logger"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenIssuer mints a session token for an authenticated user.
type TokenIssuer interface {
	Generate(userID uint, username string, roles []string, staffID *uint) (string, error)
	ExpSeconds() int
}

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	Token       string   `json:"token"`
	ExpiresIn   int      `json:"expires_in"`
	UserID      uint     `json:"user_id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name"`
	Roles       []string `json:"roles"`
	StaffID     *uint    `json:"staff_id,omitempty"`
	RedirectTo  string   `json:"redirect_to"`
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

// LoginUseCase authenticates a username/password pair and issues a session
// token. Unknown users and wrong passwords fail identically so the response
// does not reveal which accounts exist.
type LoginUseCase struct {
	userRepo identity.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo identity.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("login attempt for unknown user", "username", username)
			return nil, errors.NewUnauthorizedError("Invalid credentials")
		}
		return nil, err
	}

	if err := uc.verifier.Verify(cmd.Password, user.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", user.ID())
		return nil, errors.NewUnauthorizedError("Invalid credentials")
	}

	if !user.IsActive() {
		uc.logger.Warnw("login attempt for inactive user", "user_id", user.ID())
		return nil, errors.NewForbiddenError("User account is inactive")
	}

	roles, err := uc.userRepo.GetRoleNames(ctx, user.ID())
	if err != nil {
		uc.logger.Errorw("failed to load user roles", "error", err, "user_id", user.ID())
		return nil, errors.NewInternalError("failed to load user roles")
	}
	if len(roles) == 0 {
		uc.logger.Warnw("login attempt for user without roles", "user_id", user.ID())
		return nil, errors.NewForbiddenError("User has no assigned role")
	}

	staffID, err := uc.userRepo.GetStaffID(ctx, user.ID())
	if err != nil {
		uc.logger.Errorw("failed to load staff link", "error", err, "user_id", user.ID())
		return nil, errors.NewInternalError("failed to load staff link")
	}

	token, err := uc.issuer.Generate(user.ID(), user.Username(), roles, staffID)
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", user.ID())
		return nil, errors.NewInternalError("failed to issue session token")
	}

	user.RecordLogin()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		// the login itself succeeded; a missing timestamp is not worth failing it
		uc.logger.Warnw("failed to record login time", "error", err, "user_id", user.ID())
	}

	uc.logger.Infow("user logged in", "user_id", user.ID(), "username", user.Username())

	return &LoginResult{
		Token:       token,
		ExpiresIn:   uc.issuer.ExpSeconds(),
		UserID:      user.ID(),
		Username:    user.Username(),
		DisplayName: user.DisplayName(),
		Roles:       roles,
		StaffID:     staffID,
		RedirectTo:  redirectFor(roles),
	}, nil
}

// redirectFor picks the landing page by role priority.
func redirectFor(roles []string) string {
	switch {
	case authorization.HasRole(roles, authorization.RoleAdmin):
		return "/admin/dashboard"
	case authorization.HasRole(roles, authorization.RoleRequestor):
		return "/requestor/dashboard"
	case authorization.HasRole(roles, authorization.RoleTechnician):
		return "/technician/dashboard"
	case authorization.HasRole(roles, authorization.RoleHOD):
		return "/hod/dashboard"
	}
	return "/login"
}
