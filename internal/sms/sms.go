// Package sms models the short message entity flowing through the bridge.
package sms

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// timestampFormat is the layout used when rendering a message as text.
const timestampFormat = "2006-01-02 15:04:05  -0700"

// Message is an SMS as received from a modem or injected via the gateway.
// It is immutable after construction; delivery backends treat it as
// read-only input.
type Message struct {
	id             string
	sender         string
	recipient      string
	text           string
	timestamp      time.Time
	created        time.Time
	flash          bool
	receivingModem string
}

// Params carries the constructor inputs for a Message. Zero-value fields get
// defaults: ID becomes a fresh UUID, Timestamp becomes the current time.
type Params struct {
	ID             string
	Sender         string
	Recipient      string
	Text           string
	Timestamp      time.Time
	Flash          bool
	ReceivingModem string
}

// New creates a Message from the given parameters.
func New(p Params) *Message {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	if p.Timestamp.IsZero() {
		p.Timestamp = now
	}
	return &Message{
		id:             p.ID,
		sender:         p.Sender,
		recipient:      p.Recipient,
		text:           p.Text,
		timestamp:      p.Timestamp,
		created:        now,
		flash:          p.Flash,
		receivingModem: p.ReceivingModem,
	}
}

// ID returns the message identifier, a UUID string.
func (m *Message) ID() string { return m.id }

// Sender returns the sender's phone number, or a human-readable name for
// some received messages.
func (m *Message) Sender() string { return m.sender }

// Recipient returns the recipient's phone number in international format.
func (m *Message) Recipient() string { return m.recipient }

// Text returns the message body.
func (m *Message) Text() string { return m.text }

// Timestamp returns the message timestamp.
func (m *Message) Timestamp() time.Time { return m.timestamp }

// CreatedAt returns the time this Message object was constructed.
func (m *Message) CreatedAt() time.Time { return m.created }

// IsFlash reports whether the message is a flash SMS.
func (m *Message) IsFlash() bool { return m.flash }

// ReceivingModem returns the identifier of the modem that received the
// message, or an empty string.
func (m *Message) ReceivingModem() string { return m.receivingModem }

// HasSender reports whether a sender is set.
func (m *Message) HasSender() bool { return m.sender != "" }

// Age returns how long ago the message timestamp was.
func (m *Message) Age() time.Duration {
	return time.Since(m.timestamp)
}

// String renders the whole message as a formatted text block, suitable for
// forwarding verbatim to a delivery backend.
func (m *Message) String() string {
	var b strings.Builder
	b.WriteString("SMS ID            : " + m.id + "\n")
	b.WriteString("Sender            : " + m.sender + "\n")
	b.WriteString("Recipient         : " + m.recipient + "\n")
	b.WriteString("Message timestamp : " + m.timestamp.Format(timestampFormat) + "\n")
	b.WriteString("Created timestamp : " + m.created.Format(timestampFormat) + "\n")
	b.WriteString("Flash message     : " + strconv.FormatBool(m.flash) + "\n")
	if m.receivingModem != "" {
		b.WriteString("Receiving modem   : " + m.receivingModem + "\n")
	}
	b.WriteString("Text:\n")
	b.WriteString("-----------\n")
	b.WriteString(m.text)
	b.WriteString("\n-----------\n")
	return b.String()
}
