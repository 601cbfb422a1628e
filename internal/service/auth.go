package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/and161185/vidshare/internal/crypto"
	"github.com/and161185/vidshare/internal/errs"
	"github.com/and161185/vidshare/internal/model"
	"github.com/and161185/vidshare/internal/repository"
)

// AuthService defines account registration and token issue/verification.
type AuthService interface {
	// Register creates a new user; a taken username yields errs.ErrConflict.
	Register(ctx context.Context, username, password string) (uuid.UUID, error)
	// Login authenticates the user and issues an access token.
	Login(ctx context.Context, username, password string) (model.Tokens, model.User, error)
	// VerifyToken validates an access token and returns its subject.
	VerifyToken(token string) (uuid.UUID, error)
}

// tokenLeeway tolerates clock skew between token issuer and verifier.
const tokenLeeway = 30 * time.Second

type AuthServiceImpl struct {
	users     repository.UserRepository
	signKey   []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, signKey []byte, accessTTL time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, signKey: signKey, accessTTL: accessTTL, now: time.Now}
}

// Register stores the user with an argon2id password hash.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	name := normalizeUsername(username)
	if name == "" {
		return uuid.Nil, errs.InvalidParameter("username", username)
	}
	if password == "" {
		return uuid.Nil, errs.InvalidParameter("password", "")
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := pkgcrypto.HashPassword(password)
	if err != nil {
		return uuid.Nil, err
	}
	u := &model.User{ID: uid, Username: name, PwdHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return uuid.Nil, err
	}
	return uid, nil
}

// Login checks credentials. Unknown users and wrong passwords are both ErrUnauthorized.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (model.Tokens, model.User, error) {
	u, err := s.users.GetByUsername(ctx, normalizeUsername(username))
	if errors.Is(err, errs.ErrNotFound) {
		return model.Tokens{}, model.User{}, errs.ErrUnauthorized
	}
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	ok, err := pkgcrypto.VerifyPassword(password, u.PwdHash)
	if err != nil || !ok {
		// hide existence of the user on wrong password
		return model.Tokens{}, model.User{}, errs.ErrUnauthorized
	}

	access, exp, err := s.issueAccessToken(u.ID)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, *u, nil
}

// issueAccessToken creates a signed HS256 JWT for the given subject.
func (s *AuthServiceImpl) issueAccessToken(userID uuid.UUID) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}

// VerifyToken parses an HS256 JWT and returns the subject as a user ID.
func (s *AuthServiceImpl) VerifyToken(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(tokenLeeway),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}
	uid, err := uuid.FromString(claims.Subject)
	if err != nil || uid == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", errs.ErrUnauthorized)
	}
	return uid, nil
}

func normalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
