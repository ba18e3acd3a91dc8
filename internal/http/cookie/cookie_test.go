package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"opms/internal/http/cookie"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// replay copies the cookies set on a recorder onto a fresh request.
func replay(w *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

var _ = Describe("Jar", func() {
	var (
		jar *cookie.Jar
		w   *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		jar = cookie.NewJar(false)
		w = httptest.NewRecorder()
	})

	Describe("session cookie", func() {
		It("should be http only and same-site lax", func() {
			expires := time.Now().Add(time.Hour)
			jar.WriteSession(w, "token-value", expires)

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Name).To(Equal(cookie.SessionName))
			Expect(cookies[0].Value).To(Equal("token-value"))
			Expect(cookies[0].HttpOnly).To(BeTrue())
			Expect(cookies[0].SameSite).To(Equal(http.SameSiteLaxMode))
			Expect(cookies[0].Path).To(Equal("/"))
			Expect(cookies[0].Secure).To(BeFalse())
			Expect(cookies[0].Expires.Unix()).To(Equal(expires.Unix()))
		})

		It("should round trip through a request", func() {
			jar.WriteSession(w, "token-value", time.Now().Add(time.Hour))

			token, ok := jar.ReadSession(replay(w))
			Expect(ok).To(BeTrue())
			Expect(token).To(Equal("token-value"))
		})

		It("should report a missing cookie", func() {
			_, ok := jar.ReadSession(httptest.NewRequest(http.MethodGet, "/", nil))
			Expect(ok).To(BeFalse())
		})

		It("should expire the cookie on clear", func() {
			jar.ClearSession(w)

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
			Expect(cookies[0].Value).To(BeEmpty())
		})

		When("secure cookies are enabled", func() {
			BeforeEach(func() {
				jar = cookie.NewJar(true)
			})

			It("should set the secure attribute", func() {
				jar.WriteSession(w, "token-value", time.Now().Add(time.Hour))
				Expect(w.Result().Cookies()[0].Secure).To(BeTrue())
			})
		})
	})

	Describe("flash cookie", func() {
		It("should be read once", func() {
			jar.WriteFlash(w, cookie.Error("Invalid username or password"))
			req := replay(w)

			next := httptest.NewRecorder()
			flash, ok := jar.ReadAndClearFlash(next, req)
			Expect(ok).To(BeTrue())
			Expect(flash).To(Equal(cookie.Flash{Kind: cookie.KindError, Message: "Invalid username or password"}))

			cleared := next.Result().Cookies()
			Expect(cleared).To(HaveLen(1))
			Expect(cleared[0].Name).To(Equal(cookie.FlashName))
			Expect(cleared[0].MaxAge).To(BeNumerically("<", 0))
		})

		It("should report a pending notice", func() {
			Expect(jar.HasFlash(httptest.NewRequest(http.MethodGet, "/", nil))).To(BeFalse())

			jar.WriteFlash(w, cookie.Info("You have been logged out."))
			Expect(jar.HasFlash(replay(w))).To(BeTrue())
		})

		It("should not write an empty notice", func() {
			jar.WriteFlash(w, cookie.Success("   "))
			Expect(w.Result().Cookies()).To(BeEmpty())
		})

		It("should drop a tampered value", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: cookie.FlashName, Value: "%%not-base64%%"})

			_, ok := jar.ReadAndClearFlash(httptest.NewRecorder(), req)
			Expect(ok).To(BeFalse())
		})

		It("should drop an unknown kind", func() {
			jar.WriteFlash(w, cookie.Flash{Kind: "shout", Message: "hey"})
			Expect(w.Result().Cookies()).To(BeEmpty())
		})
	})
})
