package repositories

import (
	"context"
	"testing"
	"time"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestCostRepository(t *testing.T) {
	suite.Run(t, new(CostRepositorySuite))
}

type CostRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CostRepositoryInterface
	ctx  context.Context
}

func (s *CostRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCostRepository(s.db.DB)
	s.ctx = context.Background()
	database.CreateTestUser(s.T(), s.db, 1)
	database.CreateTestUser(s.T(), s.db, 2)
}

func (s *CostRepositorySuite) TestCreate_DefaultsCreatedAt() {
	cost := &models.Cost{
		UserID:      1,
		Category:    models.CategoryFood,
		Description: "pizza",
		Sum:         decimal.NewFromInt(8),
	}

	s.Require().NoError(s.repo.Create(s.ctx, cost))
	s.NotZero(cost.ID)
	s.WithinDuration(time.Now(), cost.CreatedAt, time.Minute)
	s.Equal(time.UTC, cost.CreatedAt.Location())
}

func (s *CostRepositorySuite) TestCreate_InvalidCategory() {
	cost := &models.Cost{
		UserID:      1,
		Category:    "travel",
		Description: "flight",
		Sum:         decimal.NewFromInt(300),
	}

	s.Error(s.repo.Create(s.ctx, cost))
}

func (s *CostRepositorySuite) TestFindByUserAndRange_HalfOpen() {
	march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	database.CreateTestCost(s.T(), s.db, 1, models.CategoryFood, "before", 1, march.Add(-time.Second))
	database.CreateTestCost(s.T(), s.db, 1, models.CategoryFood, "first", 2, march)
	database.CreateTestCost(s.T(), s.db, 1, models.CategoryHealth, "middle", 3, march.AddDate(0, 0, 14))
	database.CreateTestCost(s.T(), s.db, 1, models.CategoryFood, "after", 4, march.AddDate(0, 1, 0))
	database.CreateTestCost(s.T(), s.db, 2, models.CategoryFood, "other user", 5, march.AddDate(0, 0, 2))

	costs, err := s.repo.FindByUserAndRange(s.ctx, 1, march, march.AddDate(0, 1, 0))
	s.Require().NoError(err)
	s.Require().Len(costs, 2)
	s.Equal("first", costs[0].Description)
	s.Equal("middle", costs[1].Description)
}

func (s *CostRepositorySuite) TestFindByUserAndRange_Empty() {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	costs, err := s.repo.FindByUserAndRange(s.ctx, 1, start, start.AddDate(0, 1, 0))
	s.Require().NoError(err)
	s.NotNil(costs)
	s.Empty(costs)
}

func (s *CostRepositorySuite) TestCreateBatch() {
	now := time.Now().UTC()
	costs := []models.Cost{
		{UserID: 2, Category: models.CategorySports, Description: "gym", Sum: decimal.NewFromInt(100), CreatedAt: now},
		{UserID: 2, Category: models.CategoryEducation, Description: "book", Sum: decimal.NewFromInt(40), CreatedAt: now},
	}

	s.Require().NoError(s.repo.CreateBatch(s.ctx, costs))
	s.Require().NoError(s.repo.CreateBatch(s.ctx, nil))

	total, err := s.repo.SumByUser(s.ctx, 2)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(140).Equal(total), "got %s", total)
}

func (s *CostRepositorySuite) TestSumByUser() {
	total, err := s.repo.SumByUser(s.ctx, 1)
	s.Require().NoError(err)
	s.True(total.IsZero())

	now := time.Now().UTC()
	database.CreateTestCost(s.T(), s.db, 1, models.CategoryFood, "pizza", 8, now)
	database.CreateTestCost(s.T(), s.db, 1, models.CategoryHousing, "rent", 1200, now)
	database.CreateTestCost(s.T(), s.db, 2, models.CategoryFood, "salad", 5, now)

	total, err = s.repo.SumByUser(s.ctx, 1)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(1208).Equal(total), "got %s", total)
}
