package core

import (
	"context"
	"errors"
	"fmt"

	"paysched/internal/ethereum"
	"paysched/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdentityResolver maps a verified wallet address to its user, creating a
// WEB3 user on first sight.
type IdentityResolver struct {
	logs  *zap.SugaredLogger
	users UserRepository
}

func NewIdentityResolver(logger *zap.SugaredLogger, users UserRepository) *IdentityResolver {
	return &IdentityResolver{
		logs:  logger,
		users: users,
	}
}

// ResolveWalletIdentity is idempotent under concurrent calls for the same
// address: the unique index on wallet_address decides the winner and the
// loser re-reads the winner's row.
func (r *IdentityResolver) ResolveWalletIdentity(ctx context.Context, address string) (repository.User, error) {
	if _, err := ethereum.ParseAddress(address); err != nil {
		return repository.User{}, asValidation(err)
	}
	normalized := repository.NormalizeAddress(address)

	user, err := r.users.GetUserByWallet(ctx, normalized)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return repository.User{}, fmt.Errorf("find user by wallet: %w", err)
	}

	user = repository.User{
		ID:            uuid.NewString(),
		WalletAddress: &normalized,
		AccountType:   repository.AccountTypeWeb3,
	}

	err = r.users.CreateUser(ctx, &user)
	switch {
	case err == nil:
		r.logs.Infow("wallet user created", "user_id", user.ID, "wallet", normalized)
		return user, nil
	case errors.Is(err, repository.ErrDuplicateUser):
		existing, err := r.users.GetUserByWallet(ctx, normalized)
		if err != nil {
			return repository.User{}, fmt.Errorf("re-fetch user after concurrent create: %w", err)
		}
		return existing, nil
	default:
		return repository.User{}, fmt.Errorf("create wallet user: %w", err)
	}
}
