package models

import (
	"fmt"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"
)

type CertificateManagerIface interface {
	Create(cert NewCertificate) (Certificate, error)

	Get(id string) (Certificate, error)

	List() ([]Certificate, error)

	Update(id string, patch CertificatePatch) error

	ToggleStatus(id string, target Status) (Certificate, error)

	Delete(id string) error

	ReportExpired(asOf time.Time) ([]Certificate, error)
}

type CertificateManager struct {
	logger lager.Logger
	store  CertificateStoreInterface
	now    func() time.Time
}

func NewManager(
	logger lager.Logger,
	store CertificateStoreInterface,
	now func() time.Time,
) CertificateManager {
	if now == nil {
		now = time.Now
	}
	return CertificateManager{
		logger: logger,
		store:  store,
		now:    now,
	}
}

func (m *CertificateManager) Create(input NewCertificate) (Certificate, error) {
	cert := Certificate{
		ID:             strings.TrimSpace(input.ID),
		OwnerName:      strings.TrimSpace(input.OwnerName),
		CertificateURL: strings.TrimSpace(input.CertificateURL),
		Status:         input.Status,
		ValidFrom:      input.ValidFrom,
		ValidUntil:     input.ValidUntil,
	}

	switch {
	case cert.ID == "":
		return Certificate{}, fmt.Errorf("%w: must pass non-empty `id`", ErrInvalidInput)
	case cert.OwnerName == "":
		return Certificate{}, fmt.Errorf("%w: must pass non-empty `owner_name`", ErrInvalidInput)
	case cert.CertificateURL == "":
		return Certificate{}, fmt.Errorf("%w: must pass non-empty `certificate_url`", ErrInvalidInput)
	}

	if cert.Status == "" {
		cert.Status = StatusValid
	}
	if !cert.Status.Valid() {
		return Certificate{}, fmt.Errorf("%w: `status` must be %q or %q", ErrInvalidInput, StatusValid, StatusInvalid)
	}
	cert.CreatedAt = m.now().UTC()

	lsession := m.logger.Session("certificate-manager-create", lager.Data{
		"certificate-id": cert.ID,
	})

	lsession.Info("db-insert-certificate")
	inserted, err := m.store.InsertIfAbsent(cert)
	if err != nil {
		lsession.Error("db-insert-certificate", err)
		return Certificate{}, err
	}
	if !inserted {
		lsession.Info("db-certificate-exists")
		return Certificate{}, ErrCertificateExists
	}

	return cert, nil
}

// Get a Certificate from the database by exact id
func (m *CertificateManager) Get(id string) (Certificate, error) {
	lsession := m.logger.Session("certificate-manager-get", lager.Data{
		"certificate-id": id,
	})

	cert, err := m.store.FindByID(id)
	if err != nil {
		lsession.Error("db-generic-error", err)
		return Certificate{}, err
	}
	if cert == nil {
		lsession.Debug("db-record-not-found")
		return Certificate{}, ErrCertificateNotFound
	}
	return *cert, nil
}

func (m *CertificateManager) List() ([]Certificate, error) {
	certs, err := m.store.ListAll()
	if err != nil {
		m.logger.Session("certificate-manager-list").Error("db-generic-error", err)
		return nil, err
	}
	return certs, nil
}

// Update applies the fields present in patch. An unknown status is dropped
// rather than rejected.
func (m *CertificateManager) Update(id string, patch CertificatePatch) error {
	lsession := m.logger.Session("certificate-manager-update", lager.Data{
		"certificate-id": id,
	})

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: must pass non-empty `id`", ErrInvalidInput)
	}

	fields := map[string]interface{}{}

	if patch.Status != nil {
		if patch.Status.Valid() {
			fields["status"] = string(*patch.Status)
		} else {
			lsession.Info("dropping-unknown-status", lager.Data{"status": *patch.Status})
		}
	}
	if patch.OwnerName != nil {
		ownerName := strings.TrimSpace(*patch.OwnerName)
		if ownerName == "" {
			return fmt.Errorf("%w: `owner_name` cannot be empty", ErrInvalidInput)
		}
		fields["owner_name"] = ownerName
	}
	if patch.CertificateURL != nil {
		url := strings.TrimSpace(*patch.CertificateURL)
		if url == "" {
			return fmt.Errorf("%w: `certificate_url` cannot be empty", ErrInvalidInput)
		}
		fields["certificate_url"] = url
	}
	if patch.ValidFrom != nil {
		fields["valid_from"] = patch.ValidFrom.String()
	}
	if patch.ValidUntil != nil {
		fields["valid_until"] = patch.ValidUntil.String()
	}

	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	lsession.Info("db-update-certificate", lager.Data{"fields": len(fields)})
	found, err := m.store.UpdateFields(id, fields)
	if err != nil {
		lsession.Error("db-update-certificate", err)
		return err
	}
	if !found {
		return ErrCertificateNotFound
	}
	return nil
}

// ToggleStatus moves the certificate to target and returns the state read
// back from the store. Pressing the same button twice writes nothing the
// second time.
func (m *CertificateManager) ToggleStatus(id string, target Status) (Certificate, error) {
	lsession := m.logger.Session("certificate-manager-toggle-status", lager.Data{
		"certificate-id": id,
		"target":         target,
	})

	if !target.Valid() {
		return Certificate{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, target)
	}

	current, err := m.Get(id)
	if err != nil {
		return Certificate{}, err
	}

	if current.Status != target {
		lsession.Info("db-update-status", lager.Data{"from": current.Status})
		found, err := m.store.UpdateFields(id, map[string]interface{}{"status": string(target)})
		if err != nil {
			lsession.Error("db-update-status", err)
			return Certificate{}, err
		}
		if !found {
			return Certificate{}, ErrCertificateNotFound
		}
	}

	return m.Get(id)
}

func (m *CertificateManager) Delete(id string) error {
	lsession := m.logger.Session("certificate-manager-delete", lager.Data{
		"certificate-id": id,
	})

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: must pass non-empty `id`", ErrInvalidInput)
	}

	lsession.Info("db-delete-certificate")
	deleted, err := m.store.Delete(id)
	if err != nil {
		lsession.Error("db-delete-certificate", err)
		return err
	}
	if !deleted {
		return ErrCertificateNotFound
	}
	return nil
}

// ReportExpired logs every certificate that is still valid after its
// valid_until date. It never changes a status.
func (m *CertificateManager) ReportExpired(asOf time.Time) ([]Certificate, error) {
	lsession := m.logger.Session("report-expired", lager.Data{
		"as-of": asOf.UTC().Format(DateLayout),
	})

	certs, err := m.store.FindExpired(asOf)
	if err != nil {
		lsession.Error("db-find-expired", err)
		return nil, err
	}

	for _, cert := range certs {
		lsession.Info("expired-certificate", lager.Data{
			"certificate-id": cert.ID,
			"owner-name":     cert.OwnerName,
			"valid-until":    cert.ValidUntil.String(),
		})
	}
	lsession.Info("found-expired", lager.Data{"count": len(certs)})

	return certs, nil
}
