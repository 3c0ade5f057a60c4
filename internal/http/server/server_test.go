package server_test

import (
	"net/http"
	"time"

	"paysched/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("should report ErrServerClosed after a graceful shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0")

		errChan := srv.Run()
		Consistently(errChan, 100*time.Millisecond).ShouldNot(Receive())

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})
})
