package bot

import (
	"errors"
	"strings"

	"github.com/18F/cert-registry/models"
)

type ActionKind int

const (
	ActionAdminMenu ActionKind = iota + 1
	ActionListCertificates
	ActionShowCertificate
	ActionSetStatus
	ActionDelete
)

const (
	adminMenuData = "admin_menu"
	listData      = "list_certs"
	showPrefix    = "cert_"
	statusPrefix  = "status_"
	deletePrefix  = "delete_"
)

// MaxDataLength is the most callback data the chat platform accepts on a
// button, in bytes.
const MaxDataLength = 64

var ErrUnknownAction = errors.New("unknown callback action")

// Action is the payload carried by an inline button. All conversation state
// lives here, nothing is kept between updates.
type Action struct {
	Kind          ActionKind
	CertificateID string
	Status        models.Status
}

func AdminMenu() Action {
	return Action{Kind: ActionAdminMenu}
}

func ListCertificates() Action {
	return Action{Kind: ActionListCertificates}
}

func ShowCertificate(id string) Action {
	return Action{Kind: ActionShowCertificate, CertificateID: id}
}

func SetStatus(id string, status models.Status) Action {
	return Action{Kind: ActionSetStatus, CertificateID: id, Status: status}
}

func Delete(id string) Action {
	return Action{Kind: ActionDelete, CertificateID: id}
}

// Data encodes the action as callback data.
func (a Action) Data() string {
	switch a.Kind {
	case ActionAdminMenu:
		return adminMenuData
	case ActionListCertificates:
		return listData
	case ActionShowCertificate:
		return showPrefix + a.CertificateID
	case ActionSetStatus:
		return statusPrefix + a.CertificateID + "_" + string(a.Status)
	case ActionDelete:
		return deletePrefix + a.CertificateID
	}
	return ""
}

// Fits reports whether the encoded action can be attached to a button.
func (a Action) Fits() bool {
	return len(a.Data()) <= MaxDataLength
}

// ParseAction decodes callback data. The status is taken from after the last
// underscore so certificate ids may contain underscores themselves.
func ParseAction(data string) (Action, error) {
	switch {
	case data == adminMenuData:
		return AdminMenu(), nil
	case data == listData:
		return ListCertificates(), nil
	case strings.HasPrefix(data, showPrefix):
		id := strings.TrimPrefix(data, showPrefix)
		if id == "" {
			return Action{}, ErrUnknownAction
		}
		return ShowCertificate(id), nil
	case strings.HasPrefix(data, deletePrefix):
		id := strings.TrimPrefix(data, deletePrefix)
		if id == "" {
			return Action{}, ErrUnknownAction
		}
		return Delete(id), nil
	case strings.HasPrefix(data, statusPrefix):
		rest := strings.TrimPrefix(data, statusPrefix)
		i := strings.LastIndex(rest, "_")
		if i <= 0 {
			return Action{}, ErrUnknownAction
		}
		status := models.Status(rest[i+1:])
		if !status.Valid() {
			return Action{}, ErrUnknownAction
		}
		return SetStatus(rest[:i], status), nil
	}
	return Action{}, ErrUnknownAction
}
