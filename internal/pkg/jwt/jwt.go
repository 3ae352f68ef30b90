package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/peoplehub/hrms-backend-go/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(subjectID string, email string, employeeID *string, tenantID *string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(subjectID string, role user.Role) (token string, expiresAt int64, err error)
	ParseRefreshToken(tokenString string) (subjectID string, role user.Role, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(subjectID string, email string, employeeID *string, tenantID *string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     subjectID,
		"email":       email,
		"employee_id": valueOrNil(employeeID),
		"tenant_id":   valueOrNil(tenantID),
		"role":        string(role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(subjectID string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	// The jti keeps tokens unique even when two are minted within the same
	// second, so rotation always produces a fresh hash.
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": subjectID,
		"role":    string(role),
		"type":    "refresh",
		"jti":     uuid.NewString(),
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// ParseRefreshToken validates a refresh token and returns its subject. Any
// token whose type claim is not "refresh" is rejected.
func (j *JWTService) ParseRefreshToken(tokenString string) (subjectID string, role user.Role, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", "", err
	}

	if err := jwt.Validate(token); err != nil {
		return "", "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return "", "", jwt.ErrInvalidJWT()
	}

	subjectVal, ok := token.Get("user_id")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	subjectID, ok = subjectVal.(string)
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}

	if roleVal, ok := token.Get("role"); ok {
		if roleStr, ok := roleVal.(string); ok {
			role = user.Role(roleStr)
		}
	}

	return subjectID, role, nil
}

func valueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
