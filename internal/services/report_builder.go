package services

import (
	"finance-tracker/internal/models"
)

// BuildReport groups records by category in the given category order. Every
// category appears exactly once, with an empty entry list when it has no
// records; entries keep the input order. Records with a category outside
// categories are ignored.
func BuildReport(records []models.Cost, categories []string) models.ReportCosts {
	index := make(map[string]int, len(categories))
	report := make(models.ReportCosts, len(categories))
	for i, category := range categories {
		index[category] = i
		report[i] = models.CategoryCosts{Category: category, Entries: []models.ReportEntry{}}
	}

	for i := range records {
		pos, ok := index[records[i].Category]
		if !ok {
			continue
		}
		report[pos].Entries = append(report[pos].Entries, models.ReportEntry{
			Sum:         records[i].Sum,
			Description: records[i].Description,
			Day:         records[i].Day(),
		})
	}

	return report
}
