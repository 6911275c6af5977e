package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ihtiyati_backend/internals/configs"
	"ihtiyati_backend/internals/constants"
	settings "ihtiyati_backend/internals/features/school/settings/service"
	"ihtiyati_backend/internals/helpers/apperr"
)

// Message is what the recorder hands over; the gateway owns formatting and
// phone normalization.
type Message struct {
	To                string
	Period            string
	Class             string
	Subject           string
	SubstituteTeacher string
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

// Gateway posts to a Twilio-style per-account messages endpoint with basic
// auth. Credentials live in app_settings, not env, so the school can rotate
// them without a redeploy.
type Gateway struct {
	BaseURL string
	SID     string
	Token   string
	From    string
}

func NewGatewayFromSettings(st settings.Settings) Gateway {
	return Gateway{
		BaseURL: configs.GatewayBaseURL,
		SID:     st.Get(constants.SettingGatewaySID),
		Token:   st.Get(constants.SettingGatewayToken),
		From:    st.Get(constants.SettingGatewayFrom),
	}
}

func (g Gateway) Configured() bool {
	return g.SID != "" && g.Token != "" && g.From != ""
}

func (g Gateway) messagesURL() string {
	return fmt.Sprintf("%s/Accounts/%s/Messages.json", strings.TrimRight(g.BaseURL, "/"), g.SID)
}

// NormalizePhone prefixes the Oman country code only when the number carries
// no international prefix of its own.
func NormalizePhone(raw string) string {
	p := strings.TrimSpace(raw)
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "+") {
		return p
	}
	return constants.DefaultCountryCode + p
}

// ComposeBody renders the fixed notification template.
func ComposeBody(m Message) string {
	return fmt.Sprintf(
		"تنبيه حصة احتياط: الأستاذ/ة %s، لديك حصة احتياط — الحصة %s، الصف %s، المادة %s.",
		m.SubstituteTeacher, m.Period, m.Class, m.Subject,
	)
}

// Send is best-effort from the caller's point of view: a missing
// configuration is a silent skip, a transport failure comes back as a
// Notification error the recorder logs and moves past.
func (g Gateway) Send(ctx context.Context, m Message) error {
	if !g.Configured() {
		log.Println("[NOTIFY] skipped: gateway credentials not configured")
		return nil
	}

	to := NormalizePhone(m.To)
	if to == "" {
		log.Println("[NOTIFY] skipped: assignment has no phone number")
		return nil
	}

	agent := fiber.Post(g.messagesURL())
	agent.BasicAuth(g.SID, g.Token)
	if dl, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(dl))
	} else {
		agent.Timeout(10 * time.Second)
	}

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("To", to)
	args.Set("From", g.From)
	args.Set("Body", ComposeBody(m))
	agent.Form(args)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return apperr.Notification("", fmt.Errorf("gateway post: %v", errs[0]))
	}
	if code >= 300 {
		return apperr.Notification("", fmt.Errorf("gateway status %d: %s", code, truncate(body, 200)))
	}

	log.Printf("[NOTIFY] ✅ sent to %s (status %d)", to, code)
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}
