package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/18F/cert-registry/models"
)

// listLimit is how many certificates fit on the list screen.
const listLimit = 10

const (
	toastDenied        = "Access denied"
	toastUnknown       = "Unknown action"
	toastNotFound      = "Certificate not found"
	toastStatusUpdated = "✅ Status updated"
	toastUpdateFailed  = "❌ Update failed"
	toastDeleted       = "✅ Certificate deleted"
	toastDeleteFailed  = "❌ Delete failed"
)

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func statusGlyph(status models.Status) string {
	if status == models.StatusValid {
		return "✅"
	}
	return "❌"
}

func statusLabel(status models.Status) string {
	if status == models.StatusValid {
		return "Valid"
	}
	return "Invalid"
}

func welcomeText() string {
	return "🔐 <b>Welcome to the certificate verification service!</b>\n\n" +
		"Send me a certificate ID to check it.\n" +
		"For example: <code>CERT-</code>"
}

func adminDeniedText() string {
	return "❌ <b>Access denied</b>\n\nThe admin panel is only available to the administrator."
}

func adminMenu(total int) (string, Keyboard) {
	text := fmt.Sprintf("🔧 <b>Admin panel</b>\n\nTotal certificates: %d", total)
	return text, Keyboard{
		row(Button{Text: "📋 Certificate list", Action: ListCertificates()}),
		row(Button{Text: "🔄 Refresh", Action: AdminMenu()}),
	}
}

func certificateList(certs []models.Certificate) (string, Keyboard) {
	back := row(Button{Text: "« Back", Action: AdminMenu()})

	if len(certs) == 0 {
		return "📋 <b>Certificate list</b>\n\nNo certificates yet", Keyboard{back}
	}

	keyboard := Keyboard{}
	shown, skipped := 0, 0
	for _, cert := range certs {
		if shown == listLimit {
			break
		}
		show := ShowCertificate(cert.ID)
		if !show.Fits() {
			skipped++
			continue
		}
		keyboard = append(keyboard, row(Button{
			Text:   statusGlyph(cert.Status) + " " + cert.ID,
			Action: show,
		}))
		shown++
	}
	keyboard = append(keyboard, back)

	text := fmt.Sprintf("📋 <b>Certificate list</b>\n\nTotal: %d\nShown: %d", len(certs), shown)
	if skipped > 0 {
		text += fmt.Sprintf("\nId too long for a button: %d (send the id to look it up)", skipped)
	}
	return text, keyboard
}

func validity(cert models.Certificate) string {
	var b strings.Builder
	if cert.ValidFrom != nil {
		fmt.Fprintf(&b, "📅 <b>Valid from:</b> %s\n", cert.ValidFrom)
	}
	if cert.ValidUntil != nil {
		fmt.Fprintf(&b, "📅 <b>Valid until:</b> %s\n", cert.ValidUntil)
	}
	return b.String()
}

// certificateCard is the admin detail view. The toggle button always offers
// the opposite of the status shown. Buttons whose callback data would be
// rejected for length are left off.
func certificateCard(cert models.Certificate) (string, Keyboard) {
	text := fmt.Sprintf(
		"%s <b>Certificate %s</b>\n\n👤 <b>Owner:</b> %s\n📋 <b>Status:</b> %s\n%s🔗 <b>Link:</b> %s",
		statusGlyph(cert.Status),
		escape(cert.ID),
		escape(cert.OwnerName),
		statusLabel(cert.Status),
		validity(cert),
		escape(cert.CertificateURL),
	)

	toggle := Button{Text: "❌ Mark invalid", Action: SetStatus(cert.ID, models.StatusInvalid)}
	if cert.Status != models.StatusValid {
		toggle = Button{Text: "✅ Mark valid", Action: SetStatus(cert.ID, models.StatusValid)}
	}

	keyboard := Keyboard{}
	for _, button := range []Button{toggle, {Text: "🗑 Delete", Action: Delete(cert.ID)}} {
		if button.Action.Fits() {
			keyboard = append(keyboard, row(button))
		}
	}
	keyboard = append(keyboard, row(Button{Text: "« Back to list", Action: ListCertificates()}))

	return text, keyboard
}

func lookupFoundText(cert models.Certificate) string {
	return fmt.Sprintf(
		"%s <b>ID %s found!</b>\n\n👤 <b>Belongs to:</b> %s\n📋 <b>Status:</b> %s\n%s\n🔗 <b>View link:</b>\n%s",
		statusGlyph(cert.Status),
		escape(cert.ID),
		escape(cert.OwnerName),
		statusLabel(cert.Status),
		validity(cert),
		escape(cert.CertificateURL),
	)
}

func lookupNotFoundText(id string) string {
	return fmt.Sprintf("❌ <b>Certificate with ID %s not found</b>", escape(id))
}

func deletedCard(id string) (string, Keyboard) {
	return fmt.Sprintf("✅ <b>Certificate %s deleted</b>", escape(id)), Keyboard{
		row(Button{Text: "« To list", Action: ListCertificates()}),
	}
}
