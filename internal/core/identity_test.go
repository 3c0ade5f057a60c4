package core_test

import (
	"context"
	"errors"
	"sync"

	"paysched/internal/core"
	"paysched/internal/core/fake"
	"paysched/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const walletAddress = "0xAbC0000000000000000000000000000000000001"

// uniqueWalletStore behaves like a table with a unique index on wallet_address.
type uniqueWalletStore struct {
	mu   sync.Mutex
	rows map[string]repository.User
}

func (s *uniqueWalletStore) get(_ context.Context, address string) (repository.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.rows[address]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (s *uniqueWalletStore) create(_ context.Context, u *repository.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[*u.WalletAddress]; ok {
		return repository.ErrDuplicateUser
	}
	s.rows[*u.WalletAddress] = *u
	return nil
}

var _ = Describe("IdentityResolver", func() {
	var (
		fakeUsers *fake.UserRepository
		resolver  *core.IdentityResolver
		ctx       context.Context
	)

	BeforeEach(func() {
		fakeUsers = new(fake.UserRepository)
		resolver = core.NewIdentityResolver(zap.NewNop().Sugar(), fakeUsers)
		ctx = context.Background()
	})

	When("the wallet is known", func() {
		BeforeEach(func() {
			fakeUsers.GetUserByWalletReturns(repository.User{ID: "u1"}, nil)
		})

		It("should return the existing user without creating one", func() {
			user, err := resolver.ResolveWalletIdentity(ctx, walletAddress)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal("u1"))
			Expect(fakeUsers.CreateUserCallCount()).To(BeZero())

			_, addr := fakeUsers.GetUserByWalletArgsForCall(0)
			Expect(addr).To(Equal("0xabc0000000000000000000000000000000000001"))
		})
	})

	When("the wallet is new", func() {
		BeforeEach(func() {
			fakeUsers.GetUserByWalletReturns(repository.User{}, repository.ErrUserNotFound)
		})

		It("should create a WEB3 user without a password", func() {
			user, err := resolver.ResolveWalletIdentity(ctx, walletAddress)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeEmpty())

			Expect(fakeUsers.CreateUserCallCount()).To(Equal(1))
			_, created := fakeUsers.CreateUserArgsForCall(0)
			Expect(created.AccountType).To(Equal(repository.AccountTypeWeb3))
			Expect(created.PasswordHash).To(BeNil())
			Expect(*created.WalletAddress).To(Equal("0xabc0000000000000000000000000000000000001"))
		})
	})

	When("another request created the user first", func() {
		BeforeEach(func() {
			fakeUsers.GetUserByWalletReturnsOnCall(0, repository.User{}, repository.ErrUserNotFound)
			fakeUsers.GetUserByWalletReturnsOnCall(1, repository.User{ID: "winner"}, nil)
			fakeUsers.CreateUserReturns(repository.ErrDuplicateUser)
		})

		It("should re-fetch and return the existing row", func() {
			user, err := resolver.ResolveWalletIdentity(ctx, walletAddress)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal("winner"))
			Expect(fakeUsers.GetUserByWalletCallCount()).To(Equal(2))
		})
	})

	When("the store fails", func() {
		BeforeEach(func() {
			fakeUsers.GetUserByWalletReturns(repository.User{}, errors.New("db down"))
		})

		It("should return the error", func() {
			_, err := resolver.ResolveWalletIdentity(ctx, walletAddress)
			Expect(err).To(MatchError(ContainSubstring("db down")))
		})
	})

	It("should reject malformed addresses", func() {
		_, err := resolver.ResolveWalletIdentity(ctx, "0x12")
		Expect(err).To(MatchError(core.ErrValidation))
	})

	It("should persist exactly one user for concurrent first logins", func() {
		store := &uniqueWalletStore{rows: map[string]repository.User{}}

		var arrived sync.WaitGroup
		arrived.Add(2)
		var lookups int
		var lookupsMu sync.Mutex

		fakeUsers.GetUserByWalletStub = func(ctx context.Context, address string) (repository.User, error) {
			lookupsMu.Lock()
			lookups++
			first := lookups <= 2
			lookupsMu.Unlock()

			u, err := store.get(ctx, address)
			if first {
				// both callers observe "not found" before either creates
				arrived.Done()
				arrived.Wait()
			}
			return u, err
		}
		fakeUsers.CreateUserStub = store.create

		results := make([]repository.User, 2)
		errs := make([]error, 2)
		var done sync.WaitGroup
		for i := 0; i < 2; i++ {
			done.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer done.Done()
				results[i], errs[i] = resolver.ResolveWalletIdentity(ctx, walletAddress)
			}(i)
		}
		done.Wait()

		Expect(errs[0]).NotTo(HaveOccurred())
		Expect(errs[1]).NotTo(HaveOccurred())
		Expect(store.rows).To(HaveLen(1))
		Expect(results[0].ID).To(Equal(results[1].ID))
		Expect(fakeUsers.CreateUserCallCount()).To(Equal(2))
	})
})
