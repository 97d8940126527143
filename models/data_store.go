package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/jinzhu/gorm"
)

var (
	helperLogger = lager.NewLogger("helper-logger")
)

var updatableColumns = map[string]bool{
	"status":          true,
	"owner_name":      true,
	"certificate_url": true,
	"valid_from":      true,
	"valid_until":     true,
}

type CertificateStoreInterface interface {
	InsertIfAbsent(Certificate) (bool, error)
	FindByID(id string) (*Certificate, error)
	ListAll() ([]Certificate, error)
	UpdateFields(id string, fields map[string]interface{}) (bool, error)
	Delete(id string) (bool, error)
	FindExpired(asOf time.Time) ([]Certificate, error)
}

type CertificateStore struct {
	Database *gorm.DB
}

// InsertIfAbsent leaves an existing row with the same id untouched and
// reports whether the certificate was written.
func (s CertificateStore) InsertIfAbsent(cert Certificate) (bool, error) {
	result := s.Database.Exec(
		`INSERT INTO certificates (id, owner_name, certificate_url, status, valid_from, valid_until, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		cert.ID,
		cert.OwnerName,
		cert.CertificateURL,
		string(cert.Status),
		dateArg(cert.ValidFrom),
		dateArg(cert.ValidUntil),
		cert.CreatedAt,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (s CertificateStore) FindByID(id string) (*Certificate, error) {
	var cert Certificate
	result := s.Database.Where("id = ?", id).First(&cert)

	if result.RecordNotFound() {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &cert, nil
}

func (s CertificateStore) ListAll() ([]Certificate, error) {
	certs := []Certificate{}
	err := s.Database.Order("created_at desc").Find(&certs).Error
	if err != nil {
		return []Certificate{}, err
	}
	return certs, nil
}

func (s CertificateStore) UpdateFields(id string, fields map[string]interface{}) (bool, error) {
	if len(fields) == 0 {
		return false, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		if !updatableColumns[column] {
			return false, fmt.Errorf("column %q is not updatable", column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns)+1)
	for _, column := range columns {
		assignments = append(assignments, column+" = ?")
		args = append(args, fields[column])
	}
	args = append(args, id)

	result := s.Database.Exec(
		"UPDATE certificates SET "+strings.Join(assignments, ", ")+" WHERE id = ?",
		args...,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s CertificateStore) Delete(id string) (bool, error) {
	result := s.Database.Where("id = ?", id).Delete(&Certificate{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindExpired returns certificates still marked valid whose valid_until lies
// before asOf, oldest expiry first.
func (s CertificateStore) FindExpired(asOf time.Time) ([]Certificate, error) {
	certs := []Certificate{}
	err := s.Database.
		Where("status = ? AND valid_until IS NOT NULL AND valid_until < ?", string(StatusValid), asOf.UTC().Format(DateLayout)).
		Order("valid_until").
		Find(&certs).Error
	if err != nil {
		return []Certificate{}, err
	}
	return certs, nil
}

func dateArg(d *Date) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}
