// Package smtp содержит почтовый транспорт сервиса уведомлений.
package smtp

import "io"

// Client описывает минимальный набор операций SMTP-сессии,
// который нужен отправителю уведомлений.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// TransportInterface открывает SMTP-сессии. В тестах подменяется моком.
type TransportInterface interface {
	Connect() (Client, error)
	GetSMTPUser() string
}
