package stats

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

func strPtr(s string) *string {
	return &s
}

func decPtr(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func TestAggregateCombinesReportAndTransaction(t *testing.T) {
	reports := []models.ReportRecord{
		{Date: "2024-01-01", Site: strPtr("Abidjan"), Revenue: decPtr(15000), Expenses: decPtr(5000)},
	}
	transactions := []models.TransactionRecord{
		{Date: "2024-01-01", Site: strPtr("Abidjan"), Type: enums.TransactionDepense, Amount: decimal.NewFromInt(2000)},
	}

	rows := Aggregate(reports, transactions)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.Date != "2024-01-01" || row.Site != "Abidjan" {
		t.Fatalf("unexpected key %s/%s", row.Date, row.Site)
	}
	if !row.Revenue.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("revenue = %s", row.Revenue)
	}
	if !row.Expenses.Equal(decimal.NewFromInt(7000)) {
		t.Fatalf("expenses = %s", row.Expenses)
	}
	if !row.Profit.Equal(decimal.NewFromInt(8000)) {
		t.Fatalf("profit = %s", row.Profit)
	}
	if row.Interventions != 1 {
		t.Fatalf("interventions = %d", row.Interventions)
	}
}

func TestAggregateProfitAlwaysRevenueMinusExpenses(t *testing.T) {
	reports := []models.ReportRecord{
		{Date: "2024-03-10", Site: strPtr("Bouaké"), Revenue: decPtr(100), Expenses: decPtr(40)},
		{Date: "2024-03-10", Site: strPtr("Bouaké"), Expenses: decPtr(10)},
		{Date: "2024-03-11", Site: strPtr("Bouaké"), Revenue: decPtr(5)},
	}
	transactions := []models.TransactionRecord{
		{Date: "2024-03-10", Site: strPtr("Bouaké"), Type: enums.TransactionRevenu, Amount: decimal.NewFromInt(25)},
	}

	for _, row := range Aggregate(reports, transactions) {
		if !row.Profit.Equal(row.Revenue.Sub(row.Expenses)) {
			t.Fatalf("profit invariant broken for %s/%s", row.Date, row.Site)
		}
	}
}

func TestAggregateSkipsEmptyDates(t *testing.T) {
	reports := []models.ReportRecord{
		{Date: "", Site: strPtr("Abidjan"), Revenue: decPtr(999)},
		{Date: "  ", Site: strPtr("Abidjan")},
		{Date: "2024-05-01", Site: strPtr("Abidjan")},
	}

	rows := Aggregate(reports, nil)
	if len(rows) != 1 {
		t.Fatalf("expected only the dated report, got %d rows", len(rows))
	}
	if rows[0].Interventions != 1 {
		t.Fatalf("interventions = %d", rows[0].Interventions)
	}
}

func TestAggregateMissingSiteFallsBackToGlobalLabel(t *testing.T) {
	reports := []models.ReportRecord{
		{Date: "2024-02-02"},
		{Date: "2024-02-02", Site: strPtr("  ")},
	}

	rows := Aggregate(reports, nil)
	if len(rows) != 1 {
		t.Fatalf("expected a single Global bucket, got %d rows", len(rows))
	}
	if rows[0].Site != enums.MissingSiteLabel {
		t.Fatalf("site = %q", rows[0].Site)
	}
	if rows[0].Interventions != 2 {
		t.Fatalf("interventions = %d", rows[0].Interventions)
	}
}

func TestAggregateOneRowPerDistinctPair(t *testing.T) {
	reports := []models.ReportRecord{
		{Date: "2024-01-02", Site: strPtr("Abidjan")},
		{Date: "2024-01-01", Site: strPtr("Abidjan")},
		{Date: "2024-01-01", Site: strPtr("Bouaké")},
	}
	transactions := []models.TransactionRecord{
		{Date: "2024-01-03", Site: strPtr("Abidjan"), Type: enums.TransactionRevenu, Amount: decimal.NewFromInt(1)},
		{Date: "2024-01-01", Site: strPtr("Abidjan"), Type: enums.TransactionDepense, Amount: decimal.NewFromInt(1)},
	}

	rows := Aggregate(reports, transactions)
	if len(rows) != 4 {
		t.Fatalf("expected 4 distinct (date, site) rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Date > rows[i].Date {
			t.Fatalf("rows not sorted by date: %s before %s", rows[i-1].Date, rows[i].Date)
		}
	}
}

func TestAggregateTransactionsNeverCountInterventions(t *testing.T) {
	transactions := []models.TransactionRecord{
		{Date: "2024-06-01", Site: strPtr("Abidjan"), Type: enums.TransactionRevenu, Amount: decimal.NewFromInt(10)},
		{Date: "2024-06-01", Site: strPtr("Abidjan"), Type: enums.TransactionDepense, Amount: decimal.NewFromInt(3)},
	}

	rows := Aggregate(nil, transactions)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Interventions != 0 {
		t.Fatalf("interventions = %d, want 0", rows[0].Interventions)
	}
}

func TestAggregateIsIdempotent(t *testing.T) {
	reports := []models.ReportRecord{
		{Date: "2024-01-01", Site: strPtr("Abidjan"), Revenue: decPtr(10)},
		{Date: "2024-01-01"},
		{Date: "2024-01-02", Site: strPtr("San-Pédro"), Expenses: decPtr(7)},
	}
	transactions := []models.TransactionRecord{
		{Date: "2024-01-02", Type: enums.TransactionRevenu, Amount: decimal.NewFromInt(4)},
	}

	first := Aggregate(reports, transactions)
	second := Aggregate(reports, transactions)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation is not deterministic")
	}
}

func TestFilterBySiteWildcardPassesThrough(t *testing.T) {
	rows := []Row{
		{Date: "2024-01-01", Site: "Abidjan"},
		{Date: "2024-01-01", Site: "Bouaké"},
	}

	got := FilterBySite(rows, enums.SiteGlobal)
	if len(got) != 2 {
		t.Fatalf("wildcard should keep every row, got %d", len(got))
	}
}

func TestFilterBySiteMatchesByEquality(t *testing.T) {
	rows := []Row{
		{Date: "2024-01-01", Site: "Abidjan"},
		{Date: "2024-01-02", Site: enums.MissingSiteLabel},
		{Date: "2024-01-03", Site: "Abidjan"},
	}

	got := FilterBySite(rows, enums.SiteAbidjan)
	if len(got) != 2 {
		t.Fatalf("expected 2 Abidjan rows, got %d", len(got))
	}
	for _, row := range got {
		if row.Site != "Abidjan" {
			t.Fatalf("unexpected site %q", row.Site)
		}
	}
}

func TestFilterBySiteGlobalLabelNeverMatchesConcreteSite(t *testing.T) {
	rows := []Row{{Date: "2024-01-01", Site: enums.MissingSiteLabel}}
	if got := FilterBySite(rows, enums.SiteAbidjan); len(got) != 0 {
		t.Fatalf("Global-labeled rows must not match a concrete site filter")
	}
}
