package repository_test

import (
	"context"
	"errors"
	"time"

	"paysched/internal/db"
	"paysched/internal/repository"
	"paysched/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Repository", func() {
	var (
		repo        *repository.Repository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("should migrate users and transactions", func() {
			Expect(repo.Migrate()).To(Succeed())

			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(2))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
			Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Transaction{}))
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(repo.Migrate()).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user *repository.User
			err  error
		)

		BeforeEach(func() {
			wallet := "0xAbCdEf0000000000000000000000000000000001"
			user = &repository.User{ID: "u1", WalletAddress: &wallet, AccountType: repository.AccountTypeWeb3}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		It("should store the wallet address lowercased", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.InsertCallCount()).To(Equal(1))
			_, record := fakeStorage.InsertArgsForCall(0)
			stored := record.(*repository.User)
			Expect(*stored.WalletAddress).To(Equal("0xabcdef0000000000000000000000000000000001"))
		})

		When("the store reports a duplicate key", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicateKey)
			})

			It("should return ErrDuplicateUser", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateUser))
			})
		})

		When("the store fails otherwise", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrDuplicateUser))
			})
		})
	})

	Describe("GetUserByWallet", func() {
		It("should query the normalized address", func() {
			fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
				u := entity.(*repository.User)
				u.ID = "u1"
				return nil
			}

			user, err := repo.GetUserByWallet(ctx, " 0xABC ")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal("u1"))

			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("wallet_address"))
			Expect(value).To(Equal("0xabc"))
		})

		When("no user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				_, err := repo.GetUserByWallet(ctx, "0xabc")
				Expect(err).To(Equal(repository.ErrUserNotFound))
			})
		})
	})

	Describe("GetUserTransaction", func() {
		When("the transaction exists for the user", func() {
			BeforeEach(func() {
				fakeStorage.FindStub = func(_ context.Context, q db.Query, entity any) error {
					*entity.(*[]repository.Transaction) = []repository.Transaction{{ID: "t1", UserID: "u1"}}
					return nil
				}
			})

			It("should filter by id and owner", func() {
				tx, err := repo.GetUserTransaction(ctx, "u1", "t1")
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.ID).To(Equal("t1"))

				_, q, _ := fakeStorage.FindArgsForCall(0)
				Expect(q.Filters).To(ConsistOf(
					db.Filter{Column: "id", Op: "=", Value: "t1"},
					db.Filter{Column: "user_id", Op: "=", Value: "u1"},
				))
				Expect(q.Limit).To(Equal(1))
			})
		})

		When("nothing matches", func() {
			It("should return ErrTransactionNotFound", func() {
				_, err := repo.GetUserTransaction(ctx, "u1", "missing")
				Expect(err).To(Equal(repository.ErrTransactionNotFound))
			})
		})
	})

	Describe("ListTransactions", func() {
		It("should add inclusive bounds and sort by scheduled date descending", func() {
			from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

			txs, err := repo.ListTransactions(ctx, "u1", &from, &to)
			Expect(err).NotTo(HaveOccurred())
			Expect(txs).To(BeEmpty())
			Expect(txs).NotTo(BeNil())

			_, q, _ := fakeStorage.FindArgsForCall(0)
			Expect(q.Filters).To(Equal([]db.Filter{
				{Column: "user_id", Op: "=", Value: "u1"},
				{Column: "scheduled_date", Op: ">=", Value: from},
				{Column: "scheduled_date", Op: "<=", Value: to},
			}))
			Expect(q.OrderBy).To(Equal("scheduled_date desc"))
			Expect(q.Limit).To(BeZero())
		})

		It("should leave open bounds out", func() {
			_, err := repo.ListTransactions(ctx, "u1", nil, nil)
			Expect(err).NotTo(HaveOccurred())

			_, q, _ := fakeStorage.FindArgsForCall(0)
			Expect(q.Filters).To(HaveLen(1))
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStorage.FindReturns(fakeErr)
			})

			It("should return the error", func() {
				_, err := repo.ListTransactions(ctx, "u1", nil, nil)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListRecentTransactions", func() {
		It("should cap the result with a limit", func() {
			fakeStorage.FindStub = func(_ context.Context, q db.Query, entity any) error {
				*entity.(*[]repository.Transaction) = []repository.Transaction{
					{ID: "t2", Amount: decimal.RequireFromString("1.5")},
				}
				return nil
			}

			txs, err := repo.ListRecentTransactions(ctx, "u1", 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(txs).To(HaveLen(1))

			_, q, _ := fakeStorage.FindArgsForCall(0)
			Expect(q.Limit).To(Equal(10))
			Expect(q.OrderBy).To(Equal("scheduled_date desc"))
		})
	})

	Describe("status transitions", func() {
		When("the row is still scheduled", func() {
			BeforeEach(func() {
				fakeStorage.UpdateReturns(1, nil)
			})

			It("MarkExecuted should update conditionally on SCHEDULED", func() {
				Expect(repo.MarkExecuted(ctx, "t1", "0xhash", "{}")).To(Succeed())

				_, model, filters, updates := fakeStorage.UpdateArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Transaction{}))
				Expect(filters).To(ContainElement(db.Filter{Column: "status", Op: "=", Value: repository.StatusScheduled}))
				Expect(updates).To(HaveKeyWithValue("status", repository.StatusExecuted))
				Expect(updates).To(HaveKeyWithValue("block_chain_tx_dump", "{}"))
				Expect(updates).To(HaveKeyWithValue("execution_tx_hash", "0xhash"))
				Expect(updates).NotTo(HaveKey("block_chain_tx_hash"))
			})

			It("MarkFailed should record the reason", func() {
				Expect(repo.MarkFailed(ctx, "t1", "execution reverted")).To(Succeed())

				_, _, _, updates := fakeStorage.UpdateArgsForCall(0)
				Expect(updates).To(HaveKeyWithValue("status", repository.StatusFailed))
				Expect(updates).To(HaveKeyWithValue("failure_reason", "execution reverted"))
				Expect(updates).NotTo(HaveKey("block_chain_tx_id"))
			})
		})

		When("the row already left SCHEDULED", func() {
			BeforeEach(func() {
				fakeStorage.UpdateReturns(0, nil)
			})

			It("should return ErrStaleTransaction", func() {
				Expect(repo.MarkExecuted(ctx, "t1", "0xhash", "{}")).To(MatchError(repository.ErrStaleTransaction))
			})
		})
	})
})
