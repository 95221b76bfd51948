// Package notify sends notifications about new transactions.
//
// Notifications are fire and forget: they run detached from the request
// that triggered them and failures are only logged.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/moneyjournal/backend/pkg/format"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/rs/zerolog/log"
)

// Notifier is informed about new transactions.
type Notifier interface {
	TransactionCreated(transaction models.Transaction, submitter string)
}

// Nop is a Notifier that does nothing. It is used when no email
// API key is configured.
type Nop struct{}

func (Nop) TransactionCreated(models.Transaction, string) {}

// Message is an email sent through the API.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Email sends notifications through a Resend compatible HTTP API.
type Email struct {
	APIKey     string
	URL        string
	From       string
	Recipients []string
	Location   *time.Location // Used for the transaction date, defaults to UTC
	Timeout    time.Duration
	Client     *http.Client

	// done is called after each asynchronous send. Used in tests.
	done func(error)
}

var body = template.Must(template.New("transaction").Parse(`<h2>{{ .Icon }} New transaction</h2>
<p><strong>{{ .Submitter }}</strong> recorded a new expense.</p>
<table>
  <tr><td>Date</td><td>{{ .Date }}</td></tr>
  <tr><td>Type</td><td>{{ .Type }}</td></tr>
  <tr><td>Pocket</td><td>{{ .Pocket }}</td></tr>
  <tr><td>Note</td><td>{{ .Note }}</td></tr>
  <tr><td>Amount</td><td>{{ .Amount }}</td></tr>
  <tr><td>Paid by</td><td>{{ .PaidBy }}</td></tr>
</table>`))

// MessageFor builds the notification for a transaction.
func (e Email) MessageFor(transaction models.Transaction, submitter string) (Message, error) {
	amount := format.Currency(transaction.Amount)

	loc := e.Location
	if loc == nil {
		loc = time.UTC
	}

	var html bytes.Buffer
	err := body.Execute(&html, map[string]string{
		"Icon":      registry.CategoryIcon(transaction.Type),
		"Submitter": submitter,
		"Date":      format.Date(transaction.Date, loc),
		"Type":      transaction.Type,
		"Pocket":    transaction.Pocket,
		"Note":      transaction.Note,
		"Amount":    amount,
		"PaidBy":    transaction.PaidBy,
	})
	if err != nil {
		return Message{}, err
	}

	return Message{
		From:    e.From,
		To:      e.Recipients,
		Subject: fmt.Sprintf("New transaction: %s %s", transaction.Type, amount),
		HTML:    html.String(),
	}, nil
}

// TransactionCreated sends the notification in the background.
func (e Email) TransactionCreated(transaction models.Transaction, submitter string) {
	go func() {
		timeout := e.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := e.notify(ctx, transaction, submitter)
		if err != nil {
			log.Error().Err(err).Str("transaction", transaction.ID.String()).Msg("sending transaction notification failed")
		} else {
			log.Debug().Str("transaction", transaction.ID.String()).Msg("transaction notification sent")
		}

		if e.done != nil {
			e.done(err)
		}
	}()
}

func (e Email) notify(ctx context.Context, transaction models.Transaction, submitter string) error {
	msg, err := e.MessageFor(transaction, submitter)
	if err != nil {
		return err
	}
	return e.Send(ctx, msg)
}

// Send posts the message to the email API.
func (e Email) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.URL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+e.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := e.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("email API returned %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	return nil
}
