package sms

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewGeneratesID(t *testing.T) {
	m := New(Params{Sender: "+41790000000", Recipient: "+41791111111", Text: "hi"})
	if m.ID() == "" {
		t.Fatal("ID is empty, want generated UUID")
	}
	if _, err := uuid.Parse(m.ID()); err != nil {
		t.Errorf("ID %q is not a valid UUID: %v", m.ID(), err)
	}
}

func TestNewKeepsExplicitID(t *testing.T) {
	m := New(Params{ID: "fixed-id", Recipient: "+41791111111", Text: "hi"})
	if m.ID() != "fixed-id" {
		t.Errorf("ID = %q, want %q", m.ID(), "fixed-id")
	}
}

func TestNewDefaultsTimestamp(t *testing.T) {
	before := time.Now()
	m := New(Params{Recipient: "+41791111111", Text: "hi"})
	after := time.Now()

	if m.Timestamp().Before(before) || m.Timestamp().After(after) {
		t.Errorf("Timestamp = %v, want between %v and %v", m.Timestamp(), before, after)
	}
	if m.CreatedAt().Before(before) || m.CreatedAt().After(after) {
		t.Errorf("CreatedAt = %v, want between %v and %v", m.CreatedAt(), before, after)
	}
}

func TestHasSender(t *testing.T) {
	withSender := New(Params{Sender: "+41790000000", Recipient: "+41791111111", Text: "hi"})
	if !withSender.HasSender() {
		t.Error("HasSender() = false, want true")
	}

	noSender := New(Params{Recipient: "+41791111111", Text: "hi"})
	if noSender.HasSender() {
		t.Error("HasSender() = true, want false")
	}
}

func TestAge(t *testing.T) {
	ts := time.Now().Add(-2 * time.Hour)
	m := New(Params{Recipient: "+41791111111", Text: "hi", Timestamp: ts})
	if age := m.Age(); age < 2*time.Hour || age > 2*time.Hour+time.Minute {
		t.Errorf("Age() = %v, want ~2h", age)
	}
}

func TestStringRendering(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	m := New(Params{
		ID:             "11111111-2222-3333-4444-555555555555",
		Sender:         "+41790000000",
		Recipient:      "+41791111111",
		Text:           "hello world",
		Timestamp:      ts,
		Flash:          true,
		ReceivingModem: "modem0",
	})

	got := m.String()
	wantLines := []string{
		"SMS ID            : 11111111-2222-3333-4444-555555555555",
		"Sender            : +41790000000",
		"Recipient         : +41791111111",
		"Message timestamp : 2025-03-14 09:26:53  +0000",
		"Flash message     : true",
		"Receiving modem   : modem0",
		"Text:",
		"-----------",
		"hello world",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("String() missing line %q\nfull output:\n%s", line, got)
		}
	}
}

func TestStringOmitsModemWhenUnset(t *testing.T) {
	m := New(Params{Recipient: "+41791111111", Text: "hi"})
	if strings.Contains(m.String(), "Receiving modem") {
		t.Error("String() contains receiving modem line for message without one")
	}
}
