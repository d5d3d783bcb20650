package entity

import (
	"errors"
	"sync"

	"github.com/familyledger/finance-backend/internal/client"
)

type Level int

const (
	LevelInfo Level = iota
	LevelError
)

type Notification struct {
	Level   Level
	Message string
	// Unauthorized asks the caller to show the login screen.
	Unauthorized bool
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// Classify turns an error into the notification shown to the user.
func Classify(err error) Notification {
	var validationErr *ValidationError
	var apiErr *client.APIError

	switch {
	case errors.As(err, &validationErr):
		return Notification{Level: LevelError, Message: validationErr.Error()}
	case errors.Is(err, client.ErrUnauthorized):
		message := client.Translate("error.unauthorized", "Please log in")
		if errors.As(err, &apiErr) && apiErr.TranslationKey != "" {
			message = apiErr.Localized()
		}
		return Notification{Level: LevelError, Message: message, Unauthorized: true}
	case errors.As(err, &apiErr):
		return Notification{Level: LevelError, Message: apiErr.Localized()}
	default:
		return Notification{Level: LevelError, Message: err.Error()}
	}
}

// Notifications keeps the notifications in memory, newest last.
type Notifications struct {
	mu    sync.Mutex
	items []Notification
}

func (n *Notifications) Notify(notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, notification)
}

func (n *Notifications) Last() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.items) == 0 {
		return Notification{}, false
	}
	return n.items[len(n.items)-1], true
}

func (n *Notifications) All() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification{}, n.items...)
}
