package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"donation-service/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const sessionTTL = 24 * time.Hour

// IdentityStore is the slice of the credential store the authenticator needs.
type IdentityStore interface {
	Create(ctx context.Context, identity *entity.Identity) (*entity.Identity, error)
	GetByEmail(ctx context.Context, space entity.Space, email string) (*entity.Identity, error)
	List(ctx context.Context, space entity.Space) ([]entity.Identity, error)
	Delete(ctx context.Context, space entity.Space, id int) error
	Count(ctx context.Context, space entity.Space) (int, error)
}

type AuthService struct {
	identities IdentityStore
	rdb        *redis.Client
	jwtSecret  []byte
}

// NewAuthService creates a new instance of AuthService. rdb may be nil, in
// which case the session mirror is skipped and tokens are purely stateless.
func NewAuthService(identities IdentityStore, rdb *redis.Client, jwtSecret []byte) *AuthService {
	return &AuthService{
		identities: identities,
		rdb:        rdb,
		jwtSecret:  jwtSecret,
	}
}

// TokenClaims is the full claim set carried by a session token: the minimal
// profile {id, name, email, photo} plus the standard expiry.
type TokenClaims struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Name     string
	Email    string
	Role     string
	Password string
	Photo    string
}

// Register creates a new identity in the given space. The password is
// bcrypt-hashed before it ever reaches the store; the plaintext is not
// persisted or logged.
func (s *AuthService) Register(ctx context.Context, space entity.Space, input RegisterInput) (*entity.Identity, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", entity.ErrValidation)
	}

	_, err := s.identities.GetByEmail(ctx, space, input.Email)
	if err == nil {
		return nil, entity.ErrAlreadyExists
	}
	if !errors.Is(err, entity.ErrNotFound) {
		logger.Error().Err(err).Msgf("Error checking existing %s identity", space)
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	identity := &entity.Identity{
		Space:    space,
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
		Password: string(hashed),
		Photo:    input.Photo,
	}

	created, err := s.identities.Create(ctx, identity)
	if err != nil {
		logger.Error().Err(err).Msgf("Error creating %s identity", space)
		return nil, err
	}

	return created, nil
}

// Login verifies the credentials and issues a signed 24h session token.
// Unknown email yields ErrNotFound; a hash mismatch ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, space entity.Space, email, password string) (string, *entity.Identity, error) {
	identity, err := s.identities.GetByEmail(ctx, space, email)
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.Password), []byte(password)); err != nil {
		return "", nil, entity.ErrInvalidCredentials
	}

	claims := &TokenClaims{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Photo: identity.Photo,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := tkn.SignedString(s.jwtSecret)
	if err != nil {
		logger.Error().Err(err).Msg("Error signing session token")
		return "", nil, err
	}

	if s.rdb != nil {
		err = s.rdb.Set(ctx, sessionKey(space, email), token, sessionTTL).Err()
		if err != nil {
			logger.Error().Err(err).Msgf("Error mirroring session for %s", email)
			return "", nil, err
		}
	}

	return token, identity, nil
}

// VerifyToken checks the signature and expiry of a session token,
// independent of any transport.
func (s *AuthService) VerifyToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, entity.ErrInvalidCredentials
	}

	return claims, nil
}

// Logout drops the mirrored session. Tokens themselves stay valid until
// expiry; clearing the client-side cookie is the transport's job.
func (s *AuthService) Logout(ctx context.Context, space entity.Space, email string) error {
	if s.rdb == nil || email == "" {
		return nil
	}

	err := s.rdb.Del(ctx, sessionKey(space, email)).Err()
	if err != nil {
		logger.Error().Err(err).Msgf("Error dropping session for %s", email)
		return err
	}

	return nil
}

// ListIdentities returns every identity in a space, newest first.
func (s *AuthService) ListIdentities(ctx context.Context, space entity.Space) ([]entity.Identity, error) {
	identities, err := s.identities.List(ctx, space)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing %s identities", space)
		return nil, err
	}

	return identities, nil
}

func (s *AuthService) DeleteIdentity(ctx context.Context, space entity.Space, id int) error {
	err := s.identities.Delete(ctx, space, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting %s identity %d", space, id)
		return err
	}

	return nil
}

func (s *AuthService) CountIdentities(ctx context.Context, space entity.Space) (int, error) {
	count, err := s.identities.Count(ctx, space)
	if err != nil {
		logger.Error().Err(err).Msgf("Error counting %s identities", space)
		return 0, err
	}

	return count, nil
}

func sessionKey(space entity.Space, email string) string {
	return fmt.Sprintf("session:%s:%s", space, email)
}
