// Package notify formats and delivers operator alerts for newly created
// orders. The alert text mirrors the message the operator reads on WhatsApp;
// delivery goes to an outbound webhook which relays it.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/postrepublic/quote-system/internal/core/ports"
)

const deliverTimeout = 10 * time.Second

// WhatsAppNotifier posts the order alert (camelCase JSON plus the rendered
// message and wa.me deep link) to a configured webhook.
type WhatsAppNotifier struct {
	webhookURL     string
	operatorNumber string
	client         *http.Client
	log            zerolog.Logger
}

func NewWhatsAppNotifier(webhookURL, operatorNumber string, log zerolog.Logger) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		webhookURL:     webhookURL,
		operatorNumber: operatorNumber,
		client:         &http.Client{Timeout: deliverTimeout},
		log:            log,
	}
}

type webhookPayload struct {
	ports.OrderAlert
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl"`
}

// OrderCreated delivers one alert. A non-2xx response is an error; the caller
// decides whether to retry or drop.
func (n *WhatsAppNotifier) OrderCreated(ctx context.Context, alert ports.OrderAlert) error {
	if n.webhookURL == "" {
		n.log.Debug().Str("order_id", alert.OrderID).Msg("notification webhook not configured, skipping")
		return nil
	}

	msg := FormatAlert(alert)
	payload := webhookPayload{
		OrderAlert:  alert,
		Message:     msg,
		WhatsAppURL: WhatsAppLink(n.operatorNumber, msg),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("deliver alert: webhook returned %d", resp.StatusCode)
	}
	return nil
}

// FormatAlert renders the operator-facing message for one order.
func FormatAlert(a ports.OrderAlert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧾 *PostRepublic - New Order Alert!*\n\n")
	fmt.Fprintf(&b, "📦 *Order Details:*\n")
	fmt.Fprintf(&b, "• Order ID: %s\n", a.OrderID)
	fmt.Fprintf(&b, "• Recipient: %s\n", a.RecipientName)
	fmt.Fprintf(&b, "• Destination: %s, %s, %s\n", a.City, a.State, a.Country)
	fmt.Fprintf(&b, "• Phone: %s\n\n", a.Phone)
	fmt.Fprintf(&b, "📊 *Package Info:*\n")
	fmt.Fprintf(&b, "• Weight: %.2fkg (Chargeable: %.2fkg)\n", a.Weight, a.ChargeableWeight)
	fmt.Fprintf(&b, "• Total: RM%.2f\n\n", a.TotalPrice)
	fmt.Fprintf(&b, "💰 *Pricing Breakdown:*\n")
	fmt.Fprintf(&b, "• Base Rate: RM%.2f\n", a.BasePrice)
	fmt.Fprintf(&b, "• Fuel Surcharge: RM%.2f\n", a.FuelSurcharge)
	fmt.Fprintf(&b, "• Handling Fee: RM%.2f\n", a.HandlingFee)
	if a.RepackingFee > 0 {
		fmt.Fprintf(&b, "• Repacking: RM%.2f\n", a.RepackingFee)
	}
	fmt.Fprintf(&b, "\n⏰ Time: %s", a.CreatedAt.UTC().Format(time.RFC3339))
	return b.String()
}

// WhatsAppLink builds a wa.me deep link that opens a chat with the operator
// pre-filled with the alert message.
func WhatsAppLink(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
