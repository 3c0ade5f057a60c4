package jwt_test

import (
	"time"

	tokenIssuer "paysched/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:    "alice",
			Subject:     "user-1",
			AccountType: "WEB3",
			Expiration:  24,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate and Sign", func() {
		It("should produce a token that validates back to the same claims", func() {
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["sub"]).To(Equal("user-1"))
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["account_type"]).To(Equal("WEB3"))

			sub, err := tokenIssuer.Subject(claims)
			Expect(err).NotTo(HaveOccurred())
			Expect(sub).To(Equal("user-1"))
		})
	})

	Describe("Validate", func() {
		When("the token was signed with another secret", func() {
			It("should reject it", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is expired", func() {
			It("should return ErrTokenExpired", func() {
				tokenIssuer.TimeNow = func() time.Time {
					return time.Now().Add(-48 * time.Hour)
				}
				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())
				tokenIssuer.TimeNow = time.Now

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the token uses a non HMAC algorithm", func() {
			It("should reject it", func() {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
				signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(HaveOccurred())
			})
		})

		When("the token is garbage", func() {
			It("should return ErrTokenNotValid", func() {
				_, err := service.Validate("not-a-token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})

	Describe("Subject", func() {
		It("should fail when the claim is missing", func() {
			_, err := tokenIssuer.Subject(jwt.MapClaims{})
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})
	})
})
