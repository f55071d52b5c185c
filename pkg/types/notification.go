package types

import (
	"errors"
	"time"
)

// Operation names carried by outcomes and notifications.
const (
	OpAdd               = "add"
	OpIncrement         = "increment"
	OpEdit              = "edit"
	OpDelete            = "delete"
	OpFreeze            = "freeze"
	OpFreezeEntry       = "freeze-entry"
	OpUnfreeze          = "unfreeze"
	OpSeal              = "seal"
	OpPreventExtensions = "prevent-extensions"
)

// Outcome is the result of a successful inventory operation.
// Quantity holds the entry's value after the operation for add, increment,
// and edit; it is zero otherwise.
type Outcome struct {
	Op       string `json:"op"`
	Key      string `json:"key,omitempty"`
	Quantity int64  `json:"quantity"`
	Message  string `json:"message"`
}

// Notification is one reported outcome, successful or failed, as handed to
// a Notifier.
type Notification struct {
	Time         time.Time `json:"time"`
	CollectionID string    `json:"collection_id"`
	Op           string    `json:"op"`
	Key          string    `json:"key,omitempty"`
	Quantity     int64     `json:"quantity"`
	Message      string    `json:"message"`
	Failed       bool      `json:"failed"`
}

// Notifier receives every reported outcome. Implementations may block
// (an alert) or not (a toast, a journal).
type Notifier interface {
	Notify(n Notification) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification) error

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) error { return f(n) }

// Notifiers fans a notification out to each notifier in order. Every
// notifier is called even if an earlier one fails; the failures are joined.
type Notifiers []Notifier

// Notify delivers n to every notifier.
func (ns Notifiers) Notify(n Notification) error {
	var errs []error
	for _, nt := range ns {
		if nt == nil {
			continue
		}
		if err := nt.Notify(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
