package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"code.cloudfoundry.org/lager"
	"github.com/google/uuid"

	"github.com/18F/cert-registry/auth"
	"github.com/18F/cert-registry/models"
	"github.com/18F/cert-registry/utils"
)

const AdminTokenHeader = "X-Admin-Token"

var (
	allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	allowedHeaders = utils.NewHeaders("Content-Type", AdminTokenHeader)
)

type CertificateAPI struct {
	manager models.CertificateManagerIface
	guard   auth.Guard
	logger  lager.Logger
}

func New(
	manager models.CertificateManagerIface,
	guard auth.Guard,
	logger lager.Logger,
) *CertificateAPI {
	return &CertificateAPI{
		manager: manager,
		guard:   guard,
		logger:  logger,
	}
}

func (a *CertificateAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	lsession := a.logger.Session("certificate-api", lager.Data{
		"method":     r.Method,
		"request-id": uuid.NewString(),
	})

	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders.String())
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		a.get(w, r, lsession)
	case http.MethodPost:
		a.create(w, r, lsession)
	case http.MethodPut:
		a.update(w, r, lsession)
	case http.MethodDelete:
		a.delete(w, r, lsession)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not supported"})
	}
}

func (a *CertificateAPI) get(w http.ResponseWriter, r *http.Request, lsession lager.Logger) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))

	if id == "" {
		certs, err := a.manager.List()
		if err != nil {
			a.fail(w, lsession, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Certificates: certs})
		return
	}

	cert, err := a.manager.Get(id)
	if errors.Is(err, models.ErrCertificateNotFound) {
		writeJSON(w, http.StatusNotFound, lookupResponse{Found: false, Message: "certificate not found"})
		return
	}
	if err != nil {
		a.fail(w, lsession, err)
		return
	}
	writeJSON(w, http.StatusOK, lookupResponse{Found: true, Certificate: &cert})
}

func (a *CertificateAPI) create(w http.ResponseWriter, r *http.Request, lsession lager.Logger) {
	if !a.authorized(r, lsession) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "access denied"})
		return
	}

	input, err := parseCreate(r.Body)
	if err != nil {
		a.fail(w, lsession, err)
		return
	}

	if _, err := a.manager.Create(input); err != nil {
		a.fail(w, lsession, err)
		return
	}
	writeJSON(w, http.StatusCreated, successResponse{Success: true, Message: "certificate added"})
}

func (a *CertificateAPI) update(w http.ResponseWriter, r *http.Request, lsession lager.Logger) {
	if !a.authorized(r, lsession) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "access denied"})
		return
	}

	id, patch, err := parseUpdate(r.Body)
	if err != nil {
		a.fail(w, lsession, err)
		return
	}

	if err := a.manager.Update(id, patch); err != nil {
		a.fail(w, lsession, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "certificate updated"})
}

func (a *CertificateAPI) delete(w http.ResponseWriter, r *http.Request, lsession lager.Logger) {
	if !a.authorized(r, lsession) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "access denied"})
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id not specified"})
		return
	}

	if err := a.manager.Delete(id); err != nil {
		a.fail(w, lsession, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "certificate deleted"})
}

func (a *CertificateAPI) authorized(r *http.Request, lsession lager.Logger) bool {
	if a.guard.AllowToken(r.Header.Get(AdminTokenHeader)) {
		return true
	}
	lsession.Info("forbidden")
	return false
}

// fail maps manager errors onto the status code contract. Anything it does
// not recognise is logged and reported as a bare 500.
func (a *CertificateAPI) fail(w http.ResponseWriter, lsession lager.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrCertificateNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "certificate not found"})
	case errors.Is(err, models.ErrCertificateExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "certificate with this id already exists"})
	default:
		lsession.Error("internal-error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type lookupResponse struct {
	Found       bool                `json:"found"`
	Certificate *models.Certificate `json:"certificate,omitempty"`
	Message     string              `json:"message,omitempty"`
}

type listResponse struct {
	Certificates []models.Certificate `json:"certificates"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
