package log_test

import (
	"paysched/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Logger", func() {
	DescribeTable("ParseLevel",
		func(input string, expected zapcore.Level) {
			Expect(log.ParseLevel(input)).To(Equal(expected))
		},
		Entry("debug", "debug", zapcore.DebugLevel),
		Entry("upper case", "WARN", zapcore.WarnLevel),
		Entry("error", "error", zapcore.ErrorLevel),
		Entry("empty falls back to info", "", zapcore.InfoLevel),
		Entry("unknown falls back to info", "verbose", zapcore.InfoLevel),
	)

	It("should honour the configured level", func() {
		logger := log.NewZapLogger("paysched", zapcore.WarnLevel)
		Expect(logger).NotTo(BeNil())
		Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		Expect(logger.Desugar().Core().Enabled(zapcore.ErrorLevel)).To(BeTrue())
	})
})
