package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/flemzord/smsbridge/internal/bridge"
	"github.com/flemzord/smsbridge/internal/sms"
)

// maxWebhookBytes bounds inbound webhook payloads.
const maxWebhookBytes = 64 << 10 // 64 KiB

// InboundSMS is the JSON payload for POST /webhooks/sms.
type InboundSMS struct {
	ID        string    `json:"id,omitempty"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Flash     bool      `json:"flash,omitempty"`
	Modem     string    `json:"modem,omitempty"`
}

// webhookResponse is the JSON body returned for every webhook request.
type webhookResponse struct {
	OK    bool   `json:"ok"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// handleWebhook returns an http.HandlerFunc for POST /webhooks/sms.
// It validates the HMAC signature when a secret is configured, builds the
// SMS entity, and runs it through the forwarding pipeline. Pipeline errors
// map to distinct status codes so the SMS source can decide whether to
// retry: 403 sender blocked (do not retry), 503 no healthy route (retry
// later), 502 delivery rejected (retry later).
func (g *Gateway) handleWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g.metrics.RecordReceived()
		started := time.Now()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			g.metrics.RecordRejected()
			writeJSON(w, http.StatusBadRequest, webhookResponse{Error: "failed to read body"})
			return
		}

		if g.config.WebhookSecret != "" {
			sig := r.Header.Get("X-Signature-256")
			if !validateHMAC(body, sig, g.config.WebhookSecret) {
				g.metrics.RecordRejected()
				writeJSON(w, http.StatusUnauthorized, webhookResponse{Error: "invalid signature"})
				return
			}
		}

		var in InboundSMS
		if err := json.Unmarshal(body, &in); err != nil {
			g.metrics.RecordRejected()
			writeJSON(w, http.StatusBadRequest, webhookResponse{Error: "invalid JSON payload"})
			return
		}
		if in.Sender == "" || in.Recipient == "" {
			g.metrics.RecordRejected()
			writeJSON(w, http.StatusBadRequest, webhookResponse{Error: "sender and recipient are required"})
			return
		}

		msg := sms.New(sms.Params{
			ID:             in.ID,
			Sender:         in.Sender,
			Recipient:      in.Recipient,
			Text:           in.Text,
			Timestamp:      in.Timestamp,
			Flash:          in.Flash,
			ReceivingModem: in.Modem,
		})

		if err := g.forwarder.Forward(r.Context(), msg); err != nil {
			g.metrics.RecordRejected()
			g.logger.Warn("webhook forward failed", "sms_id", msg.ID(), "error", err)
			writeJSON(w, forwardStatusCode(err), webhookResponse{ID: msg.ID(), Error: err.Error()})
			return
		}

		g.metrics.RecordAccepted(time.Since(started))
		writeJSON(w, http.StatusAccepted, webhookResponse{OK: true, ID: msg.ID()})
	}
}

// forwardStatusCode maps pipeline errors to HTTP status codes.
func forwardStatusCode(err error) int {
	switch {
	case errors.Is(err, bridge.ErrSenderBlocked):
		return http.StatusForbidden
	case errors.Is(err, bridge.ErrNoRoute):
		return http.StatusServiceUnavailable
	case errors.Is(err, bridge.ErrDeliveryFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, body webhookResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// validateHMAC checks the HMAC-SHA256 signature in constant time.
func validateHMAC(body []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
