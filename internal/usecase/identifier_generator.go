package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"jobledger/internal/clock"
	"jobledger/internal/usecase/interfaces"
)

const (
	datePrefixLayout  = "060102"
	maxInvoicesPerDay = 999
)

var ErrInvoiceSequenceExhausted = fmt.Errorf("daily invoice sequence exhausted (%d)", maxInvoicesPerDay)

// IdentifierGenerator mints date encoded estimate and invoice numbers. It keeps
// no state: every call re-counts today's identifiers in the store. Uniqueness is
// enforced by the store, so callers retry on interfaces.ErrDuplicateIdentifier.
type IdentifierGenerator struct {
	repo  interfaces.IJobRepository
	clock clock.Clock
	loc   *time.Location
	intn  func(n int) int
}

func NewIdentifierGenerator(repo interfaces.IJobRepository, clk clock.Clock, loc *time.Location) *IdentifierGenerator {
	if loc == nil {
		loc = time.UTC
	}
	return &IdentifierGenerator{repo: repo, clock: clk, loc: loc, intn: rand.IntN}
}

// DatePrefix is the YYMMDD prefix for the calendar date of t in loc.
func DatePrefix(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(datePrefixLayout)
}

// FormatEstimateNumber builds YYMMDD + "T" + three digits + sequence letter.
// The letter is 'A' for the first estimate of the day; it wraps after 'Z'.
func FormatEstimateNumber(prefix string, random, countToday int) string {
	letter := rune('A' + countToday%26)
	return fmt.Sprintf("%sT%03d%c", prefix, random, letter)
}

// FormatInvoiceNumber builds YYMMDD + zero padded sequence, starting at 001.
func FormatInvoiceNumber(prefix string, countToday int) (string, error) {
	seq := countToday + 1
	if seq > maxInvoicesPerDay {
		return "", ErrInvoiceSequenceExhausted
	}
	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

func (g *IdentifierGenerator) NextEstimateNumber(ctx context.Context) (string, error) {
	prefix := DatePrefix(g.clock.Now(), g.loc)
	count, err := g.repo.CountIdentifiersWithPrefix(ctx, interfaces.ColumnEstimateNumber, prefix)
	if err != nil {
		return "", err
	}
	return FormatEstimateNumber(prefix, 100+g.intn(900), count), nil
}

func (g *IdentifierGenerator) NextInvoiceNumber(ctx context.Context) (string, error) {
	prefix := DatePrefix(g.clock.Now(), g.loc)
	count, err := g.repo.CountIdentifiersWithPrefix(ctx, interfaces.ColumnInvoiceNumber, prefix)
	if err != nil {
		return "", err
	}
	return FormatInvoiceNumber(prefix, count)
}
