package bot

import (
	"errors"
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/18F/cert-registry/auth"
	"github.com/18F/cert-registry/models"
)

type Handler struct {
	manager models.CertificateManagerIface
	guard   auth.Guard
	gateway Gateway
	logger  lager.Logger
}

func NewHandler(
	manager models.CertificateManagerIface,
	guard auth.Guard,
	gateway Gateway,
	logger lager.Logger,
) *Handler {
	return &Handler{
		manager: manager,
		guard:   guard,
		gateway: gateway,
		logger:  logger,
	}
}

// Handle processes one update. Only store failures are returned; gateway
// failures are logged and dropped.
func (h *Handler) Handle(in Incoming) error {
	switch u := in.(type) {
	case TextMessage:
		return h.handleMessage(u)
	case Callback:
		return h.handleCallback(u)
	}
	return nil
}

func (h *Handler) handleMessage(msg TextMessage) error {
	lsession := h.logger.Session("bot-message", lager.Data{
		"chat-id":  msg.ChatID,
		"username": msg.Username,
	})

	switch {
	case strings.HasPrefix(msg.Text, "/start"):
		h.send(lsession, msg.ChatID, welcomeText(), nil)

	case strings.HasPrefix(msg.Text, "/admin"):
		if !h.guard.AllowUsername(msg.Username) {
			lsession.Info("forbidden")
			h.send(lsession, msg.ChatID, adminDeniedText(), nil)
			return nil
		}
		certs, err := h.manager.List()
		if err != nil {
			return fmt.Errorf("listing certificates: %w", err)
		}
		text, keyboard := adminMenu(len(certs))
		h.send(lsession, msg.ChatID, text, keyboard)

	case msg.Text != "":
		id := strings.ToUpper(msg.Text)
		cert, err := h.manager.Get(id)
		if errors.Is(err, models.ErrCertificateNotFound) {
			h.send(lsession, msg.ChatID, lookupNotFoundText(id), nil)
			return nil
		}
		if err != nil {
			return fmt.Errorf("looking up certificate: %w", err)
		}
		h.send(lsession, msg.ChatID, lookupFoundText(cert), nil)
	}
	return nil
}

func (h *Handler) handleCallback(cb Callback) error {
	lsession := h.logger.Session("bot-callback", lager.Data{
		"chat-id":  cb.ChatID,
		"username": cb.Username,
		"data":     cb.Data,
	})

	if !h.guard.AllowUsername(cb.Username) {
		lsession.Info("forbidden")
		h.answer(lsession, cb.ID, toastDenied)
		return nil
	}

	action, err := ParseAction(cb.Data)
	if err != nil {
		lsession.Info("unknown-action")
		h.answer(lsession, cb.ID, toastUnknown)
		return nil
	}

	switch action.Kind {
	case ActionAdminMenu:
		certs, err := h.manager.List()
		if err != nil {
			return fmt.Errorf("listing certificates: %w", err)
		}
		text, keyboard := adminMenu(len(certs))
		h.edit(lsession, cb, text, keyboard)
		h.answer(lsession, cb.ID, "")

	case ActionListCertificates:
		certs, err := h.manager.List()
		if err != nil {
			return fmt.Errorf("listing certificates: %w", err)
		}
		text, keyboard := certificateList(certs)
		h.edit(lsession, cb, text, keyboard)
		h.answer(lsession, cb.ID, "")

	case ActionShowCertificate:
		cert, err := h.manager.Get(action.CertificateID)
		if errors.Is(err, models.ErrCertificateNotFound) {
			h.answer(lsession, cb.ID, toastNotFound)
			return nil
		}
		if err != nil {
			return fmt.Errorf("looking up certificate: %w", err)
		}
		text, keyboard := certificateCard(cert)
		h.edit(lsession, cb, text, keyboard)
		h.answer(lsession, cb.ID, "")

	case ActionSetStatus:
		cert, err := h.manager.ToggleStatus(action.CertificateID, action.Status)
		if errors.Is(err, models.ErrCertificateNotFound) || errors.Is(err, models.ErrInvalidInput) {
			h.answer(lsession, cb.ID, toastUpdateFailed)
			return nil
		}
		if err != nil {
			return fmt.Errorf("toggling status: %w", err)
		}
		h.answer(lsession, cb.ID, toastStatusUpdated)
		text, keyboard := certificateCard(cert)
		h.edit(lsession, cb, text, keyboard)

	case ActionDelete:
		err := h.manager.Delete(action.CertificateID)
		if errors.Is(err, models.ErrCertificateNotFound) || errors.Is(err, models.ErrInvalidInput) {
			h.answer(lsession, cb.ID, toastDeleteFailed)
			return nil
		}
		if err != nil {
			return fmt.Errorf("deleting certificate: %w", err)
		}
		h.answer(lsession, cb.ID, toastDeleted)
		text, keyboard := deletedCard(action.CertificateID)
		h.edit(lsession, cb, text, keyboard)
	}
	return nil
}

func (h *Handler) send(lsession lager.Logger, chatID int64, text string, keyboard Keyboard) {
	if err := h.gateway.SendMessage(chatID, text, keyboard); err != nil {
		lsession.Error("send-message", err)
	}
}

func (h *Handler) edit(lsession lager.Logger, cb Callback, text string, keyboard Keyboard) {
	if err := h.gateway.EditMessageText(cb.ChatID, cb.MessageID, text, keyboard); err != nil {
		lsession.Error("edit-message-text", err)
	}
}

func (h *Handler) answer(lsession lager.Logger, callbackID, text string) {
	if err := h.gateway.AnswerCallbackQuery(callbackID, text); err != nil {
		lsession.Error("answer-callback-query", err)
	}
}
