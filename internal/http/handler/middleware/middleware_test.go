package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"opms/internal/core"
	"opms/internal/http/cookie"
	"opms/internal/http/handler/middleware"
	"opms/internal/http/handler/middleware/fake"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("RequestIDMiddleware", func() {
	var (
		w        *httptest.ResponseRecorder
		req      *http.Request
		captured string
		handler  http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/home", nil)
		captured = ""
		handler = middleware.NewRequestIDMiddleware().RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			captured = middleware.RequestIDFromContext(r.Context())
		}))
	})

	It("should generate an id when none is sent", func() {
		handler.ServeHTTP(w, req)
		Expect(captured).NotTo(BeEmpty())
		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(captured))
	})

	It("should propagate the caller's id", func() {
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		handler.ServeHTTP(w, req)
		Expect(captured).To(Equal("abc-123"))
		Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal("abc-123"))
	})

	It("should replace an oversized id", func() {
		req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 100))
		handler.ServeHTTP(w, req)
		Expect(captured).To(HaveLen(36))
	})

	It("should be empty outside the middleware", func() {
		Expect(middleware.RequestIDFromContext(context.Background())).To(BeEmpty())
	})
})

var _ = Describe("LoggingMiddleware", func() {
	It("should log the status of each request", func() {
		observed, logs := observer.New(zap.InfoLevel)
		logger := zap.New(observed).Sugar()

		handler := middleware.NewLoggingMiddleware(logger).Logging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusSeeOther)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/login", nil))

		Expect(logs.Len()).To(Equal(1))
		entry := logs.All()[0]
		Expect(entry.Message).To(Equal("request handled"))
		Expect(entry.ContextMap()).To(HaveKeyWithValue("status", int64(http.StatusSeeOther)))
		Expect(entry.ContextMap()).To(HaveKeyWithValue("path", "/login"))
	})
})

var _ = Describe("SameOriginMiddleware", func() {
	var (
		w       *httptest.ResponseRecorder
		req     *http.Request
		called  bool
		handler http.Handler
	)

	BeforeEach(func() {
		called = false
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "http://opms.local/login", nil)
		handler = middleware.NewSameOriginMiddleware(zap.NewNop().Sugar()).SameOrigin(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		}))
	})

	JustBeforeEach(func() {
		handler.ServeHTTP(w, req)
	})

	When("the origin matches the host", func() {
		BeforeEach(func() {
			req.Header.Set("Origin", "http://opms.local")
		})

		It("should pass the request through", func() {
			Expect(called).To(BeTrue())
		})
	})

	When("only the referer is sent", func() {
		BeforeEach(func() {
			req.Header.Set("Referer", "http://opms.local/login")
		})

		It("should pass the request through", func() {
			Expect(called).To(BeTrue())
		})
	})

	When("the origin is foreign", func() {
		BeforeEach(func() {
			req.Header.Set("Origin", "http://evil.example")
		})

		It("should reject with forbidden", func() {
			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	When("neither header is sent", func() {
		It("should reject with forbidden", func() {
			Expect(called).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	When("the method is safe", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "http://opms.local/login", nil)
		})

		It("should not check the origin", func() {
			Expect(called).To(BeTrue())
		})
	})
})

var _ = Describe("AuthMiddleware", func() {
	var (
		fakeSessions *fake.SessionLoader
		jar          *cookie.Jar
		auth         *middleware.AuthMiddleware
		w            *httptest.ResponseRecorder
		req          *http.Request
		seen         core.Account
		seenOK       bool
		alice        core.Account
	)

	BeforeEach(func() {
		alice = core.Account{ID: 1, Username: "alice", Email: "a@x.com", CreatedAt: time.Now()}
		fakeSessions = new(fake.SessionLoader)
		fakeSessions.LoadSessionAccountReturns(alice, nil)
		jar = cookie.NewJar(false)
		auth = middleware.NewAuthMiddleware(zap.NewNop().Sugar(), fakeSessions, jar)
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		seen, seenOK = core.Account{}, false
	})

	capture := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, seenOK = middleware.AccountFromContext(r.Context())
	})

	Describe("LoadAccount", func() {
		JustBeforeEach(func() {
			auth.LoadAccount(capture).ServeHTTP(w, req)
		})

		When("there is no session cookie", func() {
			It("should continue anonymously", func() {
				Expect(seenOK).To(BeFalse())
				Expect(fakeSessions.LoadSessionAccountCallCount()).To(BeZero())
			})
		})

		When("the session is valid", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: cookie.SessionName, Value: "token"})
			})

			It("should store the account in the context", func() {
				Expect(seenOK).To(BeTrue())
				Expect(seen).To(Equal(alice))
				_, token := fakeSessions.LoadSessionAccountArgsForCall(0)
				Expect(token).To(Equal("token"))
			})
		})

		When("the session is gone", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: cookie.SessionName, Value: "token"})
				fakeSessions.LoadSessionAccountReturns(core.Account{}, core.ErrSessionNotFound)
			})

			It("should clear the cookie and continue anonymously", func() {
				Expect(seenOK).To(BeFalse())
				cookies := w.Result().Cookies()
				Expect(cookies).To(HaveLen(1))
				Expect(cookies[0].Name).To(Equal(cookie.SessionName))
				Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
			})
		})

		When("the session store fails", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: cookie.SessionName, Value: "token"})
				fakeSessions.LoadSessionAccountReturns(core.Account{}, errors.New("redis down"))
			})

			It("should keep the cookie and continue anonymously", func() {
				Expect(seenOK).To(BeFalse())
				Expect(w.Result().Cookies()).To(BeEmpty())
			})
		})
	})

	Describe("RequireAuth", func() {
		var called bool

		BeforeEach(func() {
			called = false
		})

		JustBeforeEach(func() {
			auth.RequireAuth(func(http.ResponseWriter, *http.Request) {
				called = true
			})(w, req)
		})

		When("the client is anonymous", func() {
			It("should redirect to login with a notice", func() {
				Expect(called).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/login"))

				cookies := w.Result().Cookies()
				Expect(cookies).To(HaveLen(1))
				Expect(cookies[0].Name).To(Equal(cookie.FlashName))
			})
		})

		When("the client is anonymous and a notice is pending", func() {
			BeforeEach(func() {
				pending := httptest.NewRecorder()
				jar.WriteFlash(pending, cookie.Info("You have been logged out."))
				for _, c := range pending.Result().Cookies() {
					req.AddCookie(c)
				}
			})

			It("should redirect without replacing the notice", func() {
				Expect(called).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusSeeOther))
				Expect(w.Header().Get("Location")).To(Equal("/login"))
				Expect(w.Result().Cookies()).To(BeEmpty())
			})
		})

		When("an account is loaded", func() {
			BeforeEach(func() {
				req = req.WithContext(context.WithValue(req.Context(), middleware.AccountKey, alice))
			})

			It("should call the handler", func() {
				Expect(called).To(BeTrue())
			})
		})
	})
})
