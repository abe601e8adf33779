package notifier

import "github.com/sirupsen/logrus"

// Notifier is the user-facing notification sink. Calls are fire-and-forget:
// nothing is returned and delivery is never retried.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type logNotifier struct {
	log *logrus.Logger
}

// NewLogNotifier returns a Notifier that forwards notifications to the service
// log. A storefront frontend would swap in its toast implementation here.
func NewLogNotifier(logger *logrus.Logger) Notifier {
	return &logNotifier{log: logger}
}

func (n *logNotifier) Success(message string) {
	n.log.WithField("notification", "success").Info(message)
}

func (n *logNotifier) Error(message string) {
	n.log.WithField("notification", "error").Warn(message)
}
