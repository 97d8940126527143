package api

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/18F/cert-registry/models"
)

type createRequest struct {
	ID             string  `json:"id"`
	OwnerName      string  `json:"owner_name"`
	CertificateURL string  `json:"certificate_url"`
	Status         *string `json:"status"`
	ValidFrom      *string `json:"valid_from"`
	ValidUntil     *string `json:"valid_until"`
}

type updateRequest struct {
	ID             string  `json:"id"`
	OwnerName      *string `json:"owner_name"`
	CertificateURL *string `json:"certificate_url"`
	Status         *string `json:"status"`
	ValidFrom      *string `json:"valid_from"`
	ValidUntil     *string `json:"valid_until"`
}

func decode(body io.Reader, dst interface{}) error {
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed JSON body", models.ErrInvalidInput)
	}
	return nil
}

func parseCreate(body io.Reader) (models.NewCertificate, error) {
	var req createRequest
	if err := decode(body, &req); err != nil {
		return models.NewCertificate{}, err
	}

	cert := models.NewCertificate{
		ID:             req.ID,
		OwnerName:      req.OwnerName,
		CertificateURL: req.CertificateURL,
	}
	if req.Status != nil {
		cert.Status = models.Status(*req.Status)
	}

	var err error
	if cert.ValidFrom, err = parseOptionalDate(req.ValidFrom); err != nil {
		return models.NewCertificate{}, err
	}
	if cert.ValidUntil, err = parseOptionalDate(req.ValidUntil); err != nil {
		return models.NewCertificate{}, err
	}
	return cert, nil
}

func parseUpdate(body io.Reader) (string, models.CertificatePatch, error) {
	var req updateRequest
	if err := decode(body, &req); err != nil {
		return "", models.CertificatePatch{}, err
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		return "", models.CertificatePatch{}, fmt.Errorf("%w: must pass non-empty `id`", models.ErrInvalidInput)
	}

	patch := models.CertificatePatch{
		OwnerName:      req.OwnerName,
		CertificateURL: req.CertificateURL,
	}
	if req.Status != nil {
		status := models.Status(*req.Status)
		patch.Status = &status
	}

	var err error
	if patch.ValidFrom, err = parseOptionalDate(req.ValidFrom); err != nil {
		return "", models.CertificatePatch{}, err
	}
	if patch.ValidUntil, err = parseOptionalDate(req.ValidUntil); err != nil {
		return "", models.CertificatePatch{}, err
	}
	return id, patch, nil
}

// parseOptionalDate treats a missing, null or blank value as absent.
func parseOptionalDate(value *string) (*models.Date, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
