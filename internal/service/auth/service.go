package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplehub/hrms-backend-go/internal/config"
	"github.com/peoplehub/hrms-backend-go/internal/domain/auth"
	"github.com/peoplehub/hrms-backend-go/internal/domain/employee"
	"github.com/peoplehub/hrms-backend-go/internal/domain/tenant"
	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/database"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/jwt"
	"github.com/peoplehub/hrms-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db           *database.DB
	cfg          *config.Config
	jwtService   jwt.Service
	userRepo     user.UserRepository
	tenantRepo   tenant.TenantRepository
	employeeRepo employee.EmployeeRepository
	tokenRepo    auth.RefreshTokenRepository
}

func NewAuthService(
	db *database.DB,
	cfg *config.Config,
	jwtService jwt.Service,
	userRepo user.UserRepository,
	tenantRepo tenant.TenantRepository,
	employeeRepo employee.EmployeeRepository,
	tokenRepo auth.RefreshTokenRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		db:           db,
		cfg:          cfg,
		jwtService:   jwtService,
		userRepo:     userRepo,
		tenantRepo:   tenantRepo,
		employeeRepo: employeeRepo,
		tokenRepo:    tokenRepo,
	}
}

// hashToken produces the storage form of a refresh token. Only the hash ever
// touches the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Register implements auth.AuthService. It bootstraps a tenant together with
// its first admin user in one transaction.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RegisterResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.RegisterResponse{}, fmt.Errorf("hash password: %w", err)
	}

	var createdTenant tenant.Tenant
	var createdUser user.User

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		createdTenant, err = s.tenantRepo.Create(txCtx, tenant.Tenant{
			Name:      req.TenantName,
			Subdomain: req.Subdomain,
			Status:    tenant.StatusActive,
		})
		if err != nil {
			return err
		}

		createdUser, err = s.userRepo.Create(txCtx, user.User{
			TenantID:     createdTenant.ID,
			Email:        req.Email,
			PasswordHash: string(passwordHash),
			FullName:     req.FullName,
			Role:         user.RoleAdmin,
		})
		return err
	})
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	tokens, err := s.issueTokens(ctx, createdUser)
	if err != nil {
		return auth.RegisterResponse{}, err
	}

	return auth.RegisterResponse{
		User:   toAuthUser(createdUser),
		Tenant: tenant.ToResponse(createdTenant),
		Tokens: tokens,
	}, nil
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	var loginUser user.User
	var err error

	if req.Subdomain != "" {
		loginTenant, err := s.tenantRepo.GetBySubdomain(ctx, req.Subdomain)
		if err != nil {
			if errors.Is(err, tenant.ErrTenantNotFound) {
				return auth.LoginResponse{}, auth.ErrInvalidCredentials
			}
			return auth.LoginResponse{}, err
		}
		loginUser, err = s.userRepo.GetByEmailAndTenant(ctx, req.Email, loginTenant.ID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return auth.LoginResponse{}, auth.ErrInvalidCredentials
			}
			return auth.LoginResponse{}, err
		}
	} else {
		loginUser, err = s.userRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return auth.LoginResponse{}, auth.ErrInvalidCredentials
			}
			return auth.LoginResponse{}, err
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(loginUser.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	userTenant, err := s.tenantRepo.GetByID(ctx, loginUser.TenantID)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if !userTenant.IsActive() {
		return auth.LoginResponse{}, auth.ErrTenantSuspended
	}

	tokens, err := s.issueTokens(ctx, loginUser)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	resp := auth.LoginResponse{
		User:   toAuthUser(loginUser),
		Tenant: tenant.ToResponse(userTenant),
		Tokens: tokens,
	}

	if loginUser.EmployeeID != nil {
		emp, err := s.employeeRepo.GetByID(ctx, *loginUser.EmployeeID, loginUser.TenantID)
		if err == nil {
			empResp := employee.ToResponse(emp)
			resp.Employee = &empResp
		}
	}
	return resp, nil
}

// Refresh implements auth.AuthService. Tokens rotate on every refresh: the
// presented token is revoked and a new pair is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	subjectID, _, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	tokenHash := hashToken(req.RefreshToken)
	active, err := s.tokenRepo.IsActive(ctx, auth.SubjectKindUser, subjectID, tokenHash)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !active {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	refreshUser, err := s.userRepo.GetByIDAnyTenant(ctx, subjectID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	userTenant, err := s.tenantRepo.GetByID(ctx, refreshUser.TenantID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !userTenant.IsActive() {
		return auth.TokenResponse{}, auth.ErrTenantSuspended
	}

	if err := s.tokenRepo.Revoke(ctx, tokenHash); err != nil {
		return auth.TokenResponse{}, err
	}
	return s.issueTokens(ctx, refreshUser)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, req auth.RefreshTokenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.tokenRepo.Revoke(ctx, hashToken(req.RefreshToken))
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, &u.TenantID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenRepo.Save(ctx, auth.SubjectKindUser, u.ID, hashToken(refreshToken), refreshExp); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("save refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}

func toAuthUser(u user.User) auth.AuthUserResponse {
	return auth.AuthUserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
	}
}
