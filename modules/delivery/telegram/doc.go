// Package telegram implements the Telegram Bot API delivery backend for smsbridge.
//
// It forwards SMS as plain-text Telegram messages and tracks the Bot API's
// reachability as a single health signal:
//
//   - Send performs one sendMessage attempt per SMS (no retries, no queuing)
//     with link previews disabled, and reports the outcome as a boolean
//   - CheckHealth lazily probes getMe, gated on a configurable interval so
//     frequent polling never floods the API
//   - HealthState returns the cached signal without any network activity
//
// Every completed attempt, probe or send, overwrites the health state: a
// success resets it to OK, a failure raises CRITICAL with the cause. The
// module registers itself as "delivery.telegram" via init().
//
// No external Telegram library is used — the module communicates with the
// Bot API via raw net/http + encoding/json.
package telegram
