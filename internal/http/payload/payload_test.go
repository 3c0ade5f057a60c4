package payload_test

import (
	"net/http/httptest"
	"strings"
	"time"

	"paysched/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const address = "0x1111111111111111111111111111111111111111"

var _ = Describe("Decoder", func() {
	var (
		decoder payload.Decoder
		req     payload.LoginRequest
	)

	It("should decode a known payload", func() {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co","password":"pw"}`))
		Expect(decoder.DecodeJSONPayload(r, &req)).To(Succeed())
		Expect(req.Email).To(Equal("a@b.co"))
	})

	It("should reject unknown fields", func() {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.co","admin":true}`))
		Expect(decoder.DecodeJSONPayload(r, &req)).To(MatchError(ContainSubstring("unknown field")))
	})

	It("should reject malformed json", func() {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`))
		Expect(decoder.DecodeJSONPayload(r, &req)).NotTo(Succeed())
	})
})

var _ = Describe("ScheduleRequest", func() {
	var req payload.ScheduleRequest

	BeforeEach(func() {
		req = payload.ScheduleRequest{
			RecipientAddress: address,
			Message:          "rent",
			Amount:           "1.5",
			ScheduledDate:    "2025-06-01T00:00:00Z",
		}
	})

	It("should accept a complete request", func() {
		Expect(payload.Validate(req)).To(Succeed())

		coreReq, err := req.ToCore()
		Expect(err).NotTo(HaveOccurred())
		Expect(coreReq.Amount.String()).To(Equal("1.5"))
		Expect(coreReq.ScheduledDate).To(BeTemporally("==", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	})

	It("should accept a plain date", func() {
		req.ScheduledDate = "2025-06-01"
		Expect(payload.Validate(req)).To(Succeed())
	})

	DescribeTable("invalid fields",
		func(mutate func(*payload.ScheduleRequest), field string) {
			mutate(&req)
			Expect(payload.Validate(req)).To(MatchError(ContainSubstring(field)))
		},
		Entry("missing recipient", func(r *payload.ScheduleRequest) { r.RecipientAddress = "" }, "recipientAddress"),
		Entry("short recipient", func(r *payload.ScheduleRequest) { r.RecipientAddress = "0x1234" }, "recipientAddress"),
		Entry("missing message", func(r *payload.ScheduleRequest) { r.Message = "" }, "message"),
		Entry("negative amount", func(r *payload.ScheduleRequest) { r.Amount = "-1" }, "amount"),
		Entry("amount with exponent", func(r *payload.ScheduleRequest) { r.Amount = "1e18" }, "amount"),
		Entry("missing date", func(r *payload.ScheduleRequest) { r.ScheduledDate = "" }, "scheduledDate"),
		Entry("unparseable date", func(r *payload.ScheduleRequest) { r.ScheduledDate = "next week" }, "scheduledDate"),
	)
})

var _ = Describe("RangeQuery", func() {
	It("should stretch a date-only end to the end of that day", func() {
		rng, err := payload.RangeQuery{Start: "2024-01-01", End: "2024-01-31"}.ToRange()
		Expect(err).NotTo(HaveOccurred())
		Expect(*rng.From).To(BeTemporally("==", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		Expect(*rng.To).To(BeTemporally("==", time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC)))
	})

	It("should keep an exact end timestamp", func() {
		rng, err := payload.RangeQuery{End: "2024-01-31T12:00:00Z"}.ToRange()
		Expect(err).NotTo(HaveOccurred())
		Expect(rng.From).To(BeNil())
		Expect(*rng.To).To(BeTemporally("==", time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)))
	})

	It("should allow both bounds to be open", func() {
		Expect(payload.Validate(payload.RangeQuery{})).To(Succeed())
		rng, err := payload.RangeQuery{}.ToRange()
		Expect(err).NotTo(HaveOccurred())
		Expect(rng.From).To(BeNil())
		Expect(rng.To).To(BeNil())
	})

	It("should reject anything that is not a date", func() {
		Expect(payload.Validate(payload.RangeQuery{Start: "01/02/2024"})).NotTo(Succeed())
	})
})

var _ = Describe("HistoryQuery", func() {
	It("should default to zero", func() {
		limit, err := payload.HistoryQuery{}.ToLimit()
		Expect(err).NotTo(HaveOccurred())
		Expect(limit).To(BeZero())
	})

	It("should reject negative limits", func() {
		Expect(payload.Validate(payload.HistoryQuery{Limit: "-1"})).NotTo(Succeed())
	})
})

var _ = Describe("RegisterRequest", func() {
	It("should require a password bcrypt can hash fully", func() {
		req := payload.RegisterRequest{Email: "ann@example.com", Password: strings.Repeat("x", 73)}
		Expect(payload.Validate(req)).To(MatchError(ContainSubstring("password")))
	})
})
