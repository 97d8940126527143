package models_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/jinzhu/gorm"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/18F/cert-registry/models"
	"github.com/18F/cert-registry/models/modelstest"
)

var _ = Describe("DataStore", func() {
	var (
		db    *gorm.DB
		store models.CertificateStore
		epoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	)

	newCert := func(id string, createdAt time.Time) models.Certificate {
		return models.Certificate{
			ID:             id,
			OwnerName:      "owner of " + id,
			CertificateURL: "https://certs.example.org/" + id,
			Status:         models.StatusValid,
			CreatedAt:      createdAt,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = modelstest.NewDatabase()
		Expect(err).ToNot(HaveOccurred())

		store = models.CertificateStore{Database: db}
	})

	AfterEach(func() {
		db.Close()
	})

	Describe("InsertIfAbsent", func() {
		It("inserts a new certificate", func() {
			inserted, err := store.InsertIfAbsent(newCert("CERT-1", epoch))

			Expect(err).ToNot(HaveOccurred())
			Expect(inserted).To(BeTrue())
		})

		It("keeps the first write when the id already exists", func() {
			first := newCert("CERT-1", epoch)
			_, err := store.InsertIfAbsent(first)
			Expect(err).ToNot(HaveOccurred())

			second := newCert("CERT-1", epoch.Add(time.Minute))
			second.OwnerName = "someone else"
			inserted, err := store.InsertIfAbsent(second)

			Expect(err).ToNot(HaveOccurred())
			Expect(inserted).To(BeFalse())

			stored, err := store.FindByID("CERT-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(stored.OwnerName).To(Equal("owner of CERT-1"))
		})

		It("round-trips the optional dates", func() {
			cert := newCert("CERT-2", epoch)
			from := models.NewDate(2024, time.January, 1)
			until := models.NewDate(2025, time.January, 1)
			cert.ValidFrom = &from
			cert.ValidUntil = &until

			_, err := store.InsertIfAbsent(cert)
			Expect(err).ToNot(HaveOccurred())

			stored, err := store.FindByID("CERT-2")
			Expect(err).ToNot(HaveOccurred())
			Expect(stored.ValidFrom.String()).To(Equal("2024-01-01"))
			Expect(stored.ValidUntil.String()).To(Equal("2025-01-01"))
		})
	})

	Describe("FindByID", func() {
		BeforeEach(func() {
			_, err := store.InsertIfAbsent(newCert("CERT-1", epoch))
			Expect(err).ToNot(HaveOccurred())
		})

		It("finds the row with the exact id", func() {
			cert, err := store.FindByID("CERT-1")

			Expect(err).ToNot(HaveOccurred())
			Expect(cert).ToNot(BeNil())
			Expect(cert.Status).To(Equal(models.StatusValid))
			Expect(cert.ValidFrom).To(BeNil())
			Expect(cert.CreatedAt.Equal(epoch)).To(BeTrue())
		})

		It("returns nil without an error when nothing matches", func() {
			cert, err := store.FindByID("cert-1")

			Expect(err).ToNot(HaveOccurred())
			Expect(cert).To(BeNil())
		})
	})

	Describe("ListAll", func() {
		It("orders certificates newest first", func() {
			for i, id := range []string{"CERT-A", "CERT-B", "CERT-C"} {
				_, err := store.InsertIfAbsent(newCert(id, epoch.Add(time.Duration(i)*time.Hour)))
				Expect(err).ToNot(HaveOccurred())
			}

			certs, err := store.ListAll()

			Expect(err).ToNot(HaveOccurred())
			Expect(certs).To(HaveLen(3))
			Expect(certs[0].ID).To(Equal("CERT-C"))
			Expect(certs[1].ID).To(Equal("CERT-B"))
			Expect(certs[2].ID).To(Equal("CERT-A"))
		})

		It("returns an empty list for an empty table", func() {
			certs, err := store.ListAll()

			Expect(err).ToNot(HaveOccurred())
			Expect(certs).To(BeEmpty())
		})
	})

	Describe("UpdateFields", func() {
		BeforeEach(func() {
			_, err := store.InsertIfAbsent(newCert("CERT-1", epoch))
			Expect(err).ToNot(HaveOccurred())
		})

		It("updates only the given columns", func() {
			found, err := store.UpdateFields("CERT-1", map[string]interface{}{
				"status":      "invalid",
				"valid_until": "2030-12-31",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())

			cert, err := store.FindByID("CERT-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(cert.Status).To(Equal(models.StatusInvalid))
			Expect(cert.ValidUntil.String()).To(Equal("2030-12-31"))
			Expect(cert.OwnerName).To(Equal("owner of CERT-1"))
		})

		It("reports a missing row", func() {
			found, err := store.UpdateFields("CERT-404", map[string]interface{}{"status": "invalid"})

			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeFalse())
		})

		It("refuses columns outside the whitelist", func() {
			_, err := store.UpdateFields("CERT-1", map[string]interface{}{"id": "CERT-2"})

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Delete", func() {
		BeforeEach(func() {
			for _, id := range []string{"CERT-1", "CERT-2"} {
				_, err := store.InsertIfAbsent(newCert(id, epoch))
				Expect(err).ToNot(HaveOccurred())
			}
		})

		It("removes exactly the matching row", func() {
			deleted, err := store.Delete("CERT-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(deleted).To(BeTrue())

			certs, err := store.ListAll()
			Expect(err).ToNot(HaveOccurred())
			Expect(certs).To(HaveLen(1))
			Expect(certs[0].ID).To(Equal("CERT-2"))
		})

		It("leaves the table alone when nothing matches", func() {
			deleted, err := store.Delete("CERT-404")
			Expect(err).ToNot(HaveOccurred())
			Expect(deleted).To(BeFalse())

			certs, err := store.ListAll()
			Expect(err).ToNot(HaveOccurred())
			Expect(certs).To(HaveLen(2))
		})
	})

	Describe("FindExpired", func() {
		BeforeEach(func() {
			past := models.NewDate(2024, time.January, 31)
			future := models.NewDate(2024, time.December, 31)

			expired := newCert("EXPIRED", epoch)
			expired.ValidUntil = &past

			revoked := newCert("REVOKED", epoch)
			revoked.ValidUntil = &past
			revoked.Status = models.StatusInvalid

			current := newCert("CURRENT", epoch)
			current.ValidUntil = &future

			open := newCert("OPEN-ENDED", epoch)

			for _, cert := range []models.Certificate{expired, revoked, current, open} {
				_, err := store.InsertIfAbsent(cert)
				Expect(err).ToNot(HaveOccurred())
			}
		})

		It("returns only valid certificates past their end date", func() {
			certs, err := store.FindExpired(epoch)

			Expect(err).ToNot(HaveOccurred())
			Expect(certs).To(HaveLen(1))
			Expect(certs[0].ID).To(Equal("EXPIRED"))
		})
	})

	Describe("concurrent writers", func() {
		const writers = 20

		// race runs fn from writers goroutines at once and collects how many
		// reported success.
		race := func(fn func(i int) (bool, error)) int {
			var (
				wg    sync.WaitGroup
				mu    sync.Mutex
				wins  int
				start = make(chan struct{})
				errs  = make(chan error, writers)
			)
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					<-start
					ok, err := fn(i)
					if err != nil {
						errs <- err
						return
					}
					if ok {
						mu.Lock()
						wins++
						mu.Unlock()
					}
				}(i)
			}
			close(start)
			wg.Wait()
			close(errs)

			for err := range errs {
				Expect(err).ToNot(HaveOccurred())
			}
			return wins
		}

		It("lets exactly one insert of an id win", func() {
			wins := race(func(i int) (bool, error) {
				cert := newCert("CERT-1", epoch.Add(time.Duration(i)*time.Second))
				cert.OwnerName = fmt.Sprintf("writer %d", i)
				return store.InsertIfAbsent(cert)
			})

			Expect(wins).To(Equal(1))

			certs, err := store.ListAll()
			Expect(err).ToNot(HaveOccurred())
			Expect(certs).To(HaveLen(1))
		})

		It("lets exactly one delete of an id succeed", func() {
			_, err := store.InsertIfAbsent(newCert("CERT-1", epoch))
			Expect(err).ToNot(HaveOccurred())

			wins := race(func(int) (bool, error) {
				return store.Delete("CERT-1")
			})

			Expect(wins).To(Equal(1))

			cert, err := store.FindByID("CERT-1")
			Expect(err).ToNot(HaveOccurred())
			Expect(cert).To(BeNil())
		})
	})
})
