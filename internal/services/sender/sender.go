// Package services содержит бизнес-логику отправки почтовых уведомлений
// о складских операциях.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/inventory-keeper/internal/lib/sl"
	"github.com/magabrotheeeer/inventory-keeper/internal/lib/smtp"
	"github.com/magabrotheeeer/inventory-keeper/internal/models"
)

// SenderService отправляет письма по событиям складских операций.
type SenderService struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(log *slog.Logger, transport smtp.TransportInterface) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendStockNotification разбирает событие из очереди и отправляет письмо
// владельцу. Уведомляются только продажи и списания, остальные события
// подтверждаются без отправки.
//
// Нечитаемое сообщение подтверждается и отбрасывается: возврат его
// в очередь привёл бы к бесконечному повтору той же ошибки разбора.
func (s *SenderService) SendStockNotification(body []byte) error {
	var event models.StockEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("dropping malformed stock event", sl.Err(err))
		return nil
	}

	if event.Reason != models.TxReasonSell && event.Reason != models.TxReasonDispose {
		return nil
	}

	to := []string{event.Email}
	var subject, bodyText string
	switch event.Reason {
	case models.TxReasonSell:
		subject = "Уведомление о продаже предмета"
		bodyText = fmt.Sprintf("Здравствуйте!\n\nПредмет %q продан на сумму %.2f.\n\nОперация отражена в вашей книге учёта.",
			event.ItemName, event.TotalAmount)
	case models.TxReasonDispose:
		subject = "Уведомление о списании предмета"
		bodyText = fmt.Sprintf("Здравствуйте!\n\nПредмет %q списан, сумма выбытия %.2f.\n\nОперация отражена в вашей книге учёта.",
			event.ItemName, event.TotalAmount)
	}

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", "to", to)
	return nil
}
