// Package notify delivers reports to subscribers.
//
// Telegram sends through the Bot API sendMessage method with HTML parse mode.
// Reports longer than the transport limit are split on line boundaries by
// SplitMessage. Noop is used when no bot token is configured.
package notify
