package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ovenly/costbook/backend/internal/costing"
	"github.com/ovenly/costbook/backend/pkg/logger"
)

// ReceiptStore persists rendered receipts and hands out download URLs.
// *config.S3Config satisfies it; a nil store disables artifact storage.
type ReceiptStore interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// TicketService turns a priced sale into a printable receipt.
type TicketService struct {
	store    ReceiptStore
	currency *money.Currency
	log      *logger.Logger
}

func NewTicketService(store ReceiptStore, currencyCode string, log *logger.Logger) *TicketService {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(money.COP)
	}
	return &TicketService{store: store, currency: currency, log: log}
}

// FormatAmount renders a decimal amount in the configured display currency.
func (s *TicketService) FormatAmount(amount decimal.Decimal) string {
	minor := amount.Shift(int32(s.currency.Fraction)).Round(0).IntPart()
	return money.New(minor, s.currency.Code).Display()
}

// Render produces the printable plain-text receipt for a ticket.
func (s *TicketService) Render(ticket costing.Ticket) string {
	var b strings.Builder
	line := strings.Repeat("-", 32)
	b.WriteString(line + "\n")
	b.WriteString("           COSTBOOK\n")
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "Item:      %s\n", ticket.RecipeName)
	fmt.Fprintf(&b, "Quantity:  %s %s\n", ticket.QuantitySold.String(), ticket.UnitLabel)
	fmt.Fprintf(&b, "Price:     %s\n", s.FormatAmount(ticket.SuggestedPrice))
	fmt.Fprintf(&b, "Date:      %s\n", time.Now().Format("2006-01-02 15:04"))
	b.WriteString(line + "\n")
	return b.String()
}

// Store renders the ticket and, when a receipt store is configured,
// uploads the artifact and returns a time-limited download URL. Without a
// store the rendered text alone is returned.
func (s *TicketService) Store(ctx context.Context, ownerID uuid.UUID, ticket costing.Ticket) (rendered, url string, err error) {
	rendered = s.Render(ticket)
	if s.store == nil {
		return rendered, "", nil
	}

	key := fmt.Sprintf("receipts/%s/%s.txt", ownerID, uuid.New())
	if err := s.store.PutObject(ctx, key, "text/plain; charset=utf-8", []byte(rendered)); err != nil {
		return "", "", fmt.Errorf("failed to store receipt: %w", err)
	}

	url, err = s.store.GeneratePresignedURL(ctx, key, 24*time.Hour)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign receipt url: %w", err)
	}

	s.log.Infow("receipt stored", "key", key, "owner_id", ownerID)
	return rendered, url, nil
}
