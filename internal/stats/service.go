package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/internal/periods"
	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

type reportLister interface {
	List(ctx context.Context) ([]models.ReportRecord, error)
}

type transactionLister interface {
	List(ctx context.Context) ([]models.TransactionRecord, error)
}

// Query selects the dashboard slice to aggregate.
type Query struct {
	Site   enums.Site
	Period enums.Period
}

// Summary carries the aggregated rows plus their derived totals.
type Summary struct {
	Rows          []Row           `json:"rows"`
	Revenue       decimal.Decimal `json:"revenue"`
	Expenses      decimal.Decimal `json:"expenses"`
	Profit        decimal.Decimal `json:"profit"`
	Interventions int             `json:"interventions"`
}

// Service exposes dashboard statistics.
type Service interface {
	Summarize(ctx context.Context, query Query) (*Summary, error)
}

type service struct {
	reports      reportLister
	transactions transactionLister
	now          func() time.Time
}

// NewService builds a stats service over the report and transaction stores.
func NewService(reports reportLister, transactions transactionLister) (Service, error) {
	if reports == nil {
		return nil, fmt.Errorf("report lister required")
	}
	if transactions == nil {
		return nil, fmt.Errorf("transaction lister required")
	}
	return &service{reports: reports, transactions: transactions, now: time.Now}, nil
}

// Summarize loads both collections, folds them into per-(date, site) rows,
// then narrows by site and period. Totals are recomputed from the surviving
// rows so filters and totals can never disagree.
func (s *service) Summarize(ctx context.Context, query Query) (*Summary, error) {
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reports")
	}
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list transactions")
	}

	rows := Aggregate(reports, transactions)
	rows = FilterBySite(rows, query.Site)
	rows = filterByPeriod(rows, query.Period, s.now())

	summary := &Summary{
		Rows:     rows,
		Revenue:  decimal.Zero,
		Expenses: decimal.Zero,
		Profit:   decimal.Zero,
	}
	for _, row := range rows {
		summary.Revenue = summary.Revenue.Add(row.Revenue)
		summary.Expenses = summary.Expenses.Add(row.Expenses)
		summary.Profit = summary.Profit.Add(row.Profit)
		summary.Interventions += row.Interventions
	}
	return summary, nil
}

func filterByPeriod(rows []Row, period enums.Period, now time.Time) []Row {
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if periods.Contains(row.Date, period, now) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
