package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paysched/internal/ethereum"
	"paysched/internal/repository"
	"paysched/internal/session"
	tokenIssuer "paysched/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for new password hashes.
var PasswordCost = 12

// Authenticator covers local password login, wallet signature login, JWTs and sessions.
type Authenticator struct {
	logs          *zap.SugaredLogger
	users         UserRepository
	sessions      SessionStore
	jwtIssuer     JWTIssuer
	resolver      *IdentityResolver
	tokenTTLHours int
}

func NewAuthenticator(logger *zap.SugaredLogger, users UserRepository, sessions SessionStore, jwt JWTIssuer, resolver *IdentityResolver, tokenTTLHours int) *Authenticator {
	return &Authenticator{
		logs:          logger,
		users:         users,
		sessions:      sessions,
		jwtIssuer:     jwt,
		resolver:      resolver,
		tokenTTLHours: tokenTTLHours,
	}
}

// Register creates a LOCAL account.
func (a *Authenticator) Register(ctx context.Context, creds Credentials) (Identity, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" {
		return Identity{}, validationErr("email is required")
	}
	if creds.Password == "" {
		return Identity{}, validationErr("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), PasswordCost)
	if err != nil {
		return Identity{}, fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	user := repository.User{
		ID:           uuid.NewString(),
		Name:         creds.Name,
		Email:        &email,
		PasswordHash: &hashStr,
		AccountType:  repository.AccountTypeLocal,
	}

	if err := a.users.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return Identity{}, ErrEmailTaken
		}
		return Identity{}, fmt.Errorf("create user: %w", err)
	}

	a.logs.Infow("user registered", "user_id", user.ID)
	return identityOf(user), nil
}

// Login checks an email and password. Unknown emails and wrong passwords
// are indistinguishable to the caller.
func (a *Authenticator) Login(ctx context.Context, email, password string) (Identity, error) {
	user, err := a.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Identity{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
		}
		return Identity{}, fmt.Errorf("get user by email: %w", err)
	}

	if user.PasswordHash == nil {
		return Identity{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return Identity{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return identityOf(user), nil
}

// LoginWallet verifies a personal_sign signature and resolves the signer to a user.
func (a *Authenticator) LoginWallet(ctx context.Context, msg WalletLogin) (Identity, error) {
	if msg.Message == "" || msg.Signature == "" || msg.Address == "" {
		return Identity{}, validationErr("signature, message and address are required")
	}

	ok, err := ethereum.VerifySignature(msg.Message, msg.Signature, msg.Address)
	if err != nil {
		return Identity{}, asValidation(err)
	}
	if !ok {
		return Identity{}, ErrInvalidSignature
	}

	user, err := a.resolver.ResolveWalletIdentity(ctx, msg.Address)
	if err != nil {
		return Identity{}, err
	}

	a.logs.Infow("wallet login", "user_id", user.ID)
	return identityOf(user), nil
}

func (a *Authenticator) IssueToken(id Identity) (string, error) {
	token := a.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		UserName:    id.Name,
		Subject:     id.UserID,
		AccountType: string(id.AccountType),
		Expiration:  time.Duration(a.tokenTTLHours),
	})

	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (a *Authenticator) StartSession(ctx context.Context, id Identity) (string, error) {
	sid, err := a.sessions.Create(ctx, id.UserID)
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	return sid, nil
}

func (a *Authenticator) EndSession(ctx context.Context, sessionID string) error {
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// IdentityFromToken resolves a bearer token to the current user.
func (a *Authenticator) IdentityFromToken(ctx context.Context, token string) (Identity, error) {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	sub, err := tokenIssuer.Subject(claims)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return a.currentUser(ctx, sub)
}

// IdentityFromSession resolves a session id to the current user.
func (a *Authenticator) IdentityFromSession(ctx context.Context, sessionID string) (Identity, error) {
	sess, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return Identity{}, fmt.Errorf("%w: session expired", ErrUnauthorized)
		}
		return Identity{}, fmt.Errorf("load session: %w", err)
	}

	return a.currentUser(ctx, sess.UserID)
}

func (a *Authenticator) currentUser(ctx context.Context, userID string) (Identity, error) {
	user, err := a.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Identity{}, fmt.Errorf("%w: unknown user", ErrUnauthorized)
		}
		return Identity{}, fmt.Errorf("get user by id: %w", err)
	}
	return identityOf(user), nil
}
