package config_test

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"opms/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var envKeys = []string{
	"API_PORT",
	"DB_CONNECTION_URL",
	"REDIS_ADDR",
	"REDIS_PASSWORD",
	"REDIS_DB",
	"SESSION_SECRET",
	"SESSION_TTL",
	"BCRYPT_COST",
	"SECURE_COOKIES",
	"SHUTDOWN_TIMEOUT",
	"DEBUG",
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
}

var _ = Describe("NewAppFromFile", func() {
	var (
		cfg        config.App
		err        error
		dotenvPath string
	)

	BeforeEach(func() {
		for _, key := range envKeys {
			if prev, ok := os.LookupEnv(key); ok {
				DeferCleanup(os.Setenv, key, prev)
			} else {
				DeferCleanup(os.Unsetenv, key)
			}
			Expect(os.Unsetenv(key)).To(Succeed())
		}
		dotenvPath = filepath.Join(GinkgoT().TempDir(), ".env")
	})

	JustBeforeEach(func() {
		cfg, err = config.NewAppFromFile(dotenvPath)
	})

	When("required variables are set and no dotenv file exists", func() {
		BeforeEach(func() {
			setEnv("DB_CONNECTION_URL", "postgres://localhost/opms")
			setEnv("SESSION_SECRET", "s3cret")
		})

		It("should apply defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("8080"))
			Expect(cfg.RedisAddr).To(Equal("localhost:6379"))
			Expect(cfg.RedisDB).To(Equal(0))
			Expect(cfg.SessionTTL).To(Equal(24 * time.Hour))
			Expect(cfg.BcryptCost).To(Equal(10))
			Expect(cfg.ShutdownTimeout).To(Equal(10 * time.Second))
			Expect(cfg.SecureCookies).To(BeFalse())
			Expect(cfg.Debug).To(BeFalse())
		})
	})

	When("variables override defaults", func() {
		BeforeEach(func() {
			setEnv("DB_CONNECTION_URL", "postgres://localhost/opms")
			setEnv("SESSION_SECRET", "s3cret")
			setEnv("API_PORT", "9090")
			setEnv("SESSION_TTL", "30m")
			setEnv("SECURE_COOKIES", "true")
			setEnv("REDIS_DB", "3")
		})

		It("should use the provided values", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("9090"))
			Expect(cfg.SessionTTL).To(Equal(30 * time.Minute))
			Expect(cfg.SecureCookies).To(BeTrue())
			Expect(cfg.RedisDB).To(Equal(3))
		})
	})

	When("a dotenv file provides the variables", func() {
		BeforeEach(func() {
			content := "DB_CONNECTION_URL=postgres://db/opms\nSESSION_SECRET=from-file\n"
			Expect(os.WriteFile(dotenvPath, []byte(content), 0o600)).To(Succeed())
		})

		It("should load them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.DBConnectionURL).To(Equal("postgres://db/opms"))
			Expect(cfg.SessionSecret).To(Equal("from-file"))
		})
	})

	When("the database url is missing", func() {
		BeforeEach(func() {
			setEnv("SESSION_SECRET", "s3cret")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("DB_CONNECTION_URL")))
		})
	})

	When("the session secret is missing", func() {
		BeforeEach(func() {
			setEnv("DB_CONNECTION_URL", "postgres://localhost/opms")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("SESSION_SECRET")))
		})
	})

	When("a variable cannot be parsed", func() {
		BeforeEach(func() {
			setEnv("DB_CONNECTION_URL", "postgres://localhost/opms")
			setEnv("SESSION_SECRET", "s3cret")
			setEnv("REDIS_DB", "not-a-number")
		})

		It("should return a parse error", func() {
			Expect(err).To(MatchError(ContainSubstring("parse env")))
		})
	})

	When("the session ttl is not positive", func() {
		BeforeEach(func() {
			setEnv("DB_CONNECTION_URL", "postgres://localhost/opms")
			setEnv("SESSION_SECRET", "s3cret")
			setEnv("SESSION_TTL", "0s")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("SESSION_TTL")))
		})
	})

	DescribeTable("bcrypt cost bounds",
		func(cost string, valid bool) {
			setEnv("DB_CONNECTION_URL", "postgres://localhost/opms")
			setEnv("SESSION_SECRET", "s3cret")
			setEnv("BCRYPT_COST", cost)

			cfg, err := config.NewAppFromFile(dotenvPath)
			if valid {
				Expect(err).NotTo(HaveOccurred())
				Expect(strconv.Itoa(cfg.BcryptCost)).To(Equal(cost))
			} else {
				Expect(err).To(MatchError(ContainSubstring("BCRYPT_COST")))
			}
		},
		Entry("below the minimum", "3", false),
		Entry("the minimum", "4", true),
		Entry("the maximum", "31", true),
		Entry("above the maximum", "32", false),
	)
})
