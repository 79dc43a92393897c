package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
	pkgerrors "github.com/ainnoce10/ebf-backend/pkg/errors"
)

type fakeReports struct {
	records []models.ReportRecord
	err     error
}

func (f *fakeReports) List(context.Context) ([]models.ReportRecord, error) {
	return f.records, f.err
}

type fakeTransactions struct {
	records []models.TransactionRecord
	err     error
}

func (f *fakeTransactions) List(context.Context) ([]models.TransactionRecord, error) {
	return f.records, f.err
}

func TestSummarizeTotalsMatchRows(t *testing.T) {
	reports := &fakeReports{records: []models.ReportRecord{
		{Date: "2026-03-02", Site: strPtr("Abidjan"), Revenue: decPtr(15000), Expenses: decPtr(5000)},
		{Date: "2026-03-03", Site: strPtr("Bouaké"), Revenue: decPtr(8000)},
	}}
	transactions := &fakeTransactions{records: []models.TransactionRecord{
		{Date: "2026-03-02", Site: strPtr("Abidjan"), Type: enums.TransactionDepense, Amount: decimal.NewFromInt(2000)},
	}}

	svc, err := NewService(reports, transactions)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	summary, err := svc.Summarize(context.Background(), Query{Site: enums.SiteGlobal})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if len(summary.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(summary.Rows))
	}
	if !summary.Revenue.Equal(decimal.NewFromInt(23000)) {
		t.Errorf("total revenue = %s, want 23000", summary.Revenue)
	}
	if !summary.Expenses.Equal(decimal.NewFromInt(7000)) {
		t.Errorf("total expenses = %s, want 7000", summary.Expenses)
	}
	if !summary.Profit.Equal(decimal.NewFromInt(16000)) {
		t.Errorf("total profit = %s, want 16000", summary.Profit)
	}
	if summary.Interventions != 2 {
		t.Errorf("interventions = %d, want 2", summary.Interventions)
	}
}

func TestSummarizeSiteSelection(t *testing.T) {
	reports := &fakeReports{records: []models.ReportRecord{
		{Date: "2026-03-02", Site: strPtr("Abidjan"), Revenue: decPtr(100)},
		{Date: "2026-03-02", Site: strPtr("Bouaké"), Revenue: decPtr(200)},
		{Date: "2026-03-02", Revenue: decPtr(300)},
	}}

	svc, err := NewService(reports, &fakeTransactions{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	summary, err := svc.Summarize(context.Background(), Query{Site: enums.SiteAbidjan})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if len(summary.Rows) != 1 {
		t.Fatalf("expected 1 row for Abidjan, got %d", len(summary.Rows))
	}
	if !summary.Revenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("revenue = %s, want 100", summary.Revenue)
	}
}

func TestSummarizePeriodSelection(t *testing.T) {
	now := time.Now()
	today := now.Format("2006-01-02")
	lastYear := now.AddDate(-1, 0, 0).Format("2006-01-02")

	reports := &fakeReports{records: []models.ReportRecord{
		{Date: today, Revenue: decPtr(50)},
		{Date: lastYear, Revenue: decPtr(999)},
	}}

	svc, err := NewService(reports, &fakeTransactions{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	summary, err := svc.Summarize(context.Background(), Query{Site: enums.SiteGlobal, Period: enums.PeriodJour})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if len(summary.Rows) != 1 {
		t.Fatalf("expected only today's row, got %d rows", len(summary.Rows))
	}
	if summary.Rows[0].Date != today {
		t.Errorf("row date = %s, want %s", summary.Rows[0].Date, today)
	}
}

func TestSummarizeDependencyFailure(t *testing.T) {
	svc, err := NewService(&fakeReports{err: errors.New("db down")}, &fakeTransactions{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.Summarize(context.Background(), Query{Site: enums.SiteGlobal})
	if err == nil {
		t.Fatal("expected error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Errorf("expected dependency error, got %v", err)
	}
}
