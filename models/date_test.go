package models_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/18F/cert-registry/models"
)

var _ = Describe("Date", func() {
	It("parses calendar dates", func() {
		d, err := models.ParseDate("2024-02-29")

		Expect(err).ToNot(HaveOccurred())
		Expect(d).To(Equal(models.NewDate(2024, time.February, 29)))
	})

	It("keeps the date part of a timestamp", func() {
		d, err := models.ParseDate("2024-02-29T23:10:00Z")

		Expect(err).ToNot(HaveOccurred())
		Expect(d.String()).To(Equal("2024-02-29"))
	})

	It("rejects anything else as invalid input", func() {
		_, err := models.ParseDate("29.02.2024")

		Expect(err).To(MatchError(models.ErrInvalidInput))
	})

	It("marshals as a plain date string", func() {
		d := models.NewDate(2025, time.June, 1)
		out, err := json.Marshal(struct {
			Until *models.Date `json:"until"`
			From  *models.Date `json:"from"`
		}{Until: &d})

		Expect(err).ToNot(HaveOccurred())
		Expect(string(out)).To(Equal(`{"until":"2025-06-01","from":null}`))
	})

	It("scans the shapes drivers return", func() {
		var d models.Date

		Expect(d.Scan(time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC))).To(Succeed())
		Expect(d.String()).To(Equal("2024-07-04"))

		Expect(d.Scan("2024-07-05 00:00:00+00:00")).To(Succeed())
		Expect(d.String()).To(Equal("2024-07-05"))

		Expect(d.Scan([]byte("2024-07-06"))).To(Succeed())
		Expect(d.String()).To(Equal("2024-07-06"))

		Expect(d.Scan(42)).ToNot(Succeed())
	})
})

var _ = Describe("Status", func() {
	It("knows the enumerated values", func() {
		Expect(models.StatusValid.Valid()).To(BeTrue())
		Expect(models.StatusInvalid.Valid()).To(BeTrue())
		Expect(models.Status("archived").Valid()).To(BeFalse())
		Expect(models.Status("VALID").Valid()).To(BeFalse())
	})

	It("toggles between valid and invalid", func() {
		Expect(models.StatusValid.Toggle()).To(Equal(models.StatusInvalid))
		Expect(models.StatusInvalid.Toggle()).To(Equal(models.StatusValid))
	})
})
