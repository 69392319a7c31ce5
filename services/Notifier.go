package services

import "log"

// Notifier receives the transient confirmation messages shown to the user
// after cart mutations. The view layer supplies its own implementation.
type Notifier interface {
	Notify(message string)
}

type LogNotifier struct{}

func (LogNotifier) Notify(message string) {
	log.Printf("notification: %v", message)
}
