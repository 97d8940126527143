package models

import (
	"errors"
	"time"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrCertificateExists   = errors.New("certificate already exists")
	ErrCertificateNotFound = errors.New("certificate not found")
)

type Certificate struct {
	ID             string    `gorm:"primary_key;type:varchar(255)" json:"id"`
	OwnerName      string    `gorm:"not null" json:"owner_name"`
	CertificateURL string    `gorm:"column:certificate_url;not null" json:"certificate_url"`
	Status         Status    `gorm:"type:varchar(16);not null;default:'valid'" json:"status"`
	ValidFrom      *Date     `gorm:"type:date" json:"valid_from"`
	ValidUntil     *Date     `gorm:"type:date" json:"valid_until"`
	CreatedAt      time.Time `gorm:"not null;index" json:"created_at"`
}

func (Certificate) TableName() string {
	return "certificates"
}

// NewCertificate carries the fields of a create request. Strings are trimmed
// and checked by the manager.
type NewCertificate struct {
	ID             string
	OwnerName      string
	CertificateURL string
	Status         Status
	ValidFrom      *Date
	ValidUntil     *Date
}

// CertificatePatch carries the fields of a partial update; nil fields are
// left untouched.
type CertificatePatch struct {
	Status         *Status
	OwnerName      *string
	CertificateURL *string
	ValidFrom      *Date
	ValidUntil     *Date
}
