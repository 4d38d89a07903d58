package services

import (
	"sort"
	"sync"
	"time"

	"finance-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type priceRange struct {
	min float64
	max float64
}

type costGenerator struct {
	mu     sync.Mutex
	faker  *gofakeit.Faker
	prices map[string]priceRange
}

// NewCostGenerator creates a generator. A zero seed picks a random one.
func NewCostGenerator(seed uint64) CostGeneratorInterface {
	return &costGenerator{
		faker: gofakeit.New(seed),
		prices: map[string]priceRange{
			models.CategoryFood:      {min: 5, max: 120},
			models.CategoryHealth:    {min: 20, max: 400},
			models.CategoryHousing:   {min: 50, max: 2500},
			models.CategorySports:    {min: 10, max: 300},
			models.CategoryEducation: {min: 15, max: 900},
		},
	}
}

// GenerateCosts returns count costs dated between the first day of the
// month months-1 months before now and now, sorted by date.
func (g *costGenerator) GenerateCosts(userID int64, count, months int, now time.Time) []models.Cost {
	g.mu.Lock()
	defer g.mu.Unlock()

	now = now.UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	span := now.Sub(from)

	costs := make([]models.Cost, 0, count)
	for i := 0; i < count; i++ {
		category := models.Categories[g.faker.Number(0, len(models.Categories)-1)]
		price := g.prices[category]

		offset := time.Duration(g.faker.Number(0, int(span/time.Second))) * time.Second

		costs = append(costs, models.Cost{
			UserID:      userID,
			Category:    category,
			Description: g.describe(category),
			Sum:         decimal.NewFromFloat(g.faker.Price(price.min, price.max)).Round(2),
			CreatedAt:   from.Add(offset),
		})
	}

	sort.SliceStable(costs, func(i, j int) bool {
		return costs[i].CreatedAt.Before(costs[j].CreatedAt)
	})

	return costs
}

func (g *costGenerator) describe(category string) string {
	switch category {
	case models.CategoryFood:
		switch g.faker.Number(0, 3) {
		case 0:
			return g.faker.Breakfast()
		case 1:
			return g.faker.Lunch()
		case 2:
			return g.faker.Dinner()
		default:
			return g.faker.Snack()
		}
	case models.CategoryHealth:
		return g.faker.RandomString([]string{"pharmacy", "dentist", "eye exam", "physiotherapy", "vitamins"}) + " - " + g.faker.Company()
	case models.CategoryHousing:
		return g.faker.RandomString([]string{"rent", "electricity bill", "water bill", "furniture", "repairs"})
	case models.CategorySports:
		return g.faker.RandomString([]string{"gym membership", "running shoes", "swimming pool", "yoga class"}) + " " + g.faker.Hobby()
	default:
		return g.faker.RandomString([]string{"online course", "textbook", "workshop", "tuition"}) + ": " + g.faker.BookTitle()
	}
}
