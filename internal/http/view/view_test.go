package view_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"opms/internal/core"
	"opms/internal/http/cookie"
	"opms/internal/http/view"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Renderer", func() {
	var (
		renderer *view.Renderer
		w        *httptest.ResponseRecorder
		account  *core.Account
	)

	BeforeEach(func() {
		var err error
		renderer, err = view.NewRenderer()
		Expect(err).NotTo(HaveOccurred())
		w = httptest.NewRecorder()
		account = &core.Account{
			ID:        7,
			Username:  "alice",
			Email:     "a@x.com",
			CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}
	})

	It("should render the login form", func() {
		err := renderer.Render(context.Background(), w, http.StatusOK, view.LoginPage, view.Page{})
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(Equal("text/html; charset=utf-8"))
		Expect(w.Body.String()).To(ContainSubstring(`<title>Log in | OPMS</title>`))
		Expect(w.Body.String()).To(ContainSubstring(`action="/login"`))
	})

	It("should render the register form fields", func() {
		err := renderer.Render(context.Background(), w, http.StatusOK, view.RegisterPage, view.Page{})
		Expect(err).NotTo(HaveOccurred())
		for _, field := range []string{"username", "email", "password", "confirm_password"} {
			Expect(w.Body.String()).To(ContainSubstring(`name="` + field + `"`))
		}
	})

	It("should show the flash notice", func() {
		flash := cookie.Error("Username already taken")
		err := renderer.Render(context.Background(), w, http.StatusOK, view.RegisterPage, view.Page{Flash: &flash})
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Body.String()).To(ContainSubstring(`flash-error`))
		Expect(w.Body.String()).To(ContainSubstring(`Username already taken`))
	})

	It("should greet the signed in account on home", func() {
		err := renderer.Render(context.Background(), w, http.StatusOK, view.HomePage, view.Page{Account: account})
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Body.String()).To(ContainSubstring("Welcome back, alice."))
		Expect(w.Body.String()).To(ContainSubstring(`href="/logout"`))
	})

	It("should invite anonymous visitors to log in on home", func() {
		err := renderer.Render(context.Background(), w, http.StatusOK, view.HomePage, view.Page{})
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Body.String()).NotTo(ContainSubstring("Welcome back"))
		Expect(w.Body.String()).To(ContainSubstring(`href="/register"`))
	})

	It("should render the dashboard", func() {
		err := renderer.Render(context.Background(), w, http.StatusOK, view.IndexPage, view.Page{Account: account})
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Body.String()).To(ContainSubstring("a@x.com"))
		Expect(w.Body.String()).To(ContainSubstring("2024-03-01"))
	})

	It("should escape account data", func() {
		account.Username = "<script>alert(1)</script>"
		err := renderer.Render(context.Background(), w, http.StatusOK, view.HomePage, view.Page{Account: account})
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Body.String()).NotTo(ContainSubstring("<script>"))
		Expect(w.Body.String()).To(ContainSubstring("&lt;script&gt;"))
	})

	It("should reject an unknown page", func() {
		err := renderer.Render(context.Background(), w, http.StatusOK, "missing", view.Page{})
		Expect(err).To(MatchError(ContainSubstring("unknown page")))
		Expect(w.Body.Len()).To(BeZero())
	})
})
