package ethereum_test

import (
	"math/big"

	"paysched/internal/ethereum"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Units", func() {
	Describe("ToWei", func() {
		It("should convert ether to wei", func() {
			wei, err := ethereum.ToWei(decimal.RequireFromString("1.5"))
			Expect(err).NotTo(HaveOccurred())
			Expect(wei.String()).To(Equal("1500000000000000000"))
		})

		It("should accept exactly 18 decimals", func() {
			wei, err := ethereum.ToWei(decimal.RequireFromString("0.000000000000000001"))
			Expect(err).NotTo(HaveOccurred())
			Expect(wei.Int64()).To(Equal(int64(1)))
		})

		It("should reject sub-wei precision", func() {
			_, err := ethereum.ToWei(decimal.RequireFromString("0.0000000000000000001"))
			Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
		})

		It("should reject negative amounts", func() {
			_, err := ethereum.ToWei(decimal.RequireFromString("-1"))
			Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
		})
	})

	Describe("FromWei", func() {
		It("should convert wei to ether", func() {
			wei, _ := new(big.Int).SetString("2500000000000000000", 10)
			Expect(ethereum.FromWei(wei).String()).To(Equal("2.5"))
		})

		It("should treat nil as zero", func() {
			Expect(ethereum.FromWei(nil).IsZero()).To(BeTrue())
		})
	})

	Describe("ParseAddress", func() {
		It("should reject malformed addresses", func() {
			_, err := ethereum.ParseAddress("0x123")
			Expect(err).To(MatchError(ethereum.ErrInvalidAddress))
		})
	})
})
