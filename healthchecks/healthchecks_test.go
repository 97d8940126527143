package healthchecks_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/18F/cert-registry/healthchecks"
	"github.com/18F/cert-registry/models/modelstest"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping() error {
	return p.err
}

var _ = Describe("Healthchecks", func() {
	var (
		router *mux.Router
		checks map[string]healthchecks.Checker
	)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		return w
	}

	BeforeEach(func() {
		db, err := modelstest.NewDatabase()
		Expect(err).NotTo(HaveOccurred())

		checks = map[string]healthchecks.Checker{
			"postgresql": healthchecks.CreatePostgresqlChecker(db),
			"telegram":   healthchecks.CreateTelegramChecker(fakePinger{}),
		}
		router = mux.NewRouter()
	})

	JustBeforeEach(func() {
		healthchecks.Bind(router, checks)
	})

	It("always answers the http check", func() {
		Expect(get("/healthcheck/http").Code).To(Equal(http.StatusOK))
	})

	It("passes when every check passes", func() {
		Expect(get("/healthcheck").Code).To(Equal(http.StatusOK))
		Expect(get("/healthcheck/postgresql").Code).To(Equal(http.StatusOK))
	})

	It("returns not found for an unknown check", func() {
		Expect(get("/healthcheck/s3").Code).To(Equal(http.StatusNotFound))
	})

	Context("when the bot token is rejected", func() {
		BeforeEach(func() {
			checks["telegram"] = healthchecks.CreateTelegramChecker(fakePinger{err: errors.New("Unauthorized")})
		})

		It("reports the failing check", func() {
			w := get("/healthcheck")
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(Equal("telegram error: Unauthorized\n"))

			w = get("/healthcheck/telegram")
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(Equal("telegram error: Unauthorized"))
		})
	})
})
