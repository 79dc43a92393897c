package stats

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ainnoce10/ebf-backend/pkg/db/models"
	"github.com/ainnoce10/ebf-backend/pkg/enums"
)

// Key identifies one aggregated row. Using a struct key instead of a
// concatenated string keeps site names containing separators unambiguous.
type Key struct {
	Date string
	Site string
}

// Row is a per-(date, site) financial/activity summary. Profit is always
// derived from revenue and expenses after every contribution is folded in,
// never carried independently.
type Row struct {
	Date          string          `json:"date"`
	Site          string          `json:"site"`
	Revenue       decimal.Decimal `json:"revenue"`
	Expenses      decimal.Decimal `json:"expenses"`
	Profit        decimal.Decimal `json:"profit"`
	Interventions int             `json:"interventions"`
}

// Aggregate folds reports and transactions into one Row per distinct
// (date, site) pair, sorted ascending by date. Records without a date are
// skipped; records without a site land in the "Global" bucket. The result is
// a pure function of its inputs: the same collections always produce the
// same rows.
func Aggregate(reports []models.ReportRecord, transactions []models.TransactionRecord) []Row {
	acc := map[Key]*Row{}

	for _, report := range reports {
		if strings.TrimSpace(report.Date) == "" {
			continue
		}
		row := rowFor(acc, Key{Date: report.Date, Site: siteLabel(report.Site)})
		row.Revenue = row.Revenue.Add(amountOrZero(report.Revenue))
		row.Expenses = row.Expenses.Add(amountOrZero(report.Expenses))
		row.Interventions++
	}

	for _, txn := range transactions {
		if strings.TrimSpace(txn.Date) == "" {
			continue
		}
		row := rowFor(acc, Key{Date: txn.Date, Site: siteLabel(txn.Site)})
		switch txn.Type {
		case enums.TransactionRevenu:
			row.Revenue = row.Revenue.Add(txn.Amount)
		case enums.TransactionDepense:
			row.Expenses = row.Expenses.Add(txn.Amount)
		}
	}

	rows := make([]Row, 0, len(acc))
	for _, row := range acc {
		row.Profit = row.Revenue.Sub(row.Expenses)
		rows = append(rows, *row)
	}

	// Secondary site ordering keeps repeated runs byte-identical.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].Site < rows[j].Site
	})

	return rows
}

// FilterBySite narrows rows to the selected site. The wildcard returns the
// collection unchanged; otherwise rows are matched by equality, so the
// "Global" missing-site bucket never matches a concrete site selection.
func FilterBySite(rows []Row, site enums.Site) []Row {
	if site.IsWildcard() {
		return rows
	}
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if row.Site == string(site) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func rowFor(acc map[Key]*Row, key Key) *Row {
	if row, ok := acc[key]; ok {
		return row
	}
	row := &Row{
		Date:     key.Date,
		Site:     key.Site,
		Revenue:  decimal.Zero,
		Expenses: decimal.Zero,
		Profit:   decimal.Zero,
	}
	acc[key] = row
	return row
}

func siteLabel(site *string) string {
	if site == nil || strings.TrimSpace(*site) == "" {
		return enums.MissingSiteLabel
	}
	return *site
}

func amountOrZero(amount *decimal.Decimal) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return *amount
}
