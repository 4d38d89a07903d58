package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	store *Store
}

// NewUserRepository returns a Mongo-backed user repository
func NewUserRepository(store *Store) repositories.UserRepositoryInterface {
	return &userRepository{store: store}
}

func (r *userRepository) collection() *mongo.Collection {
	return r.store.db.Collection(usersCollection)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if err := user.Validate(); err != nil {
		return err
	}

	if _, err := r.collection().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

type costRepository struct {
	store *Store
}

// NewCostRepository returns a Mongo-backed cost repository
func NewCostRepository(store *Store) repositories.CostRepositoryInterface {
	return &costRepository{store: store}
}

func (r *costRepository) collection() *mongo.Collection {
	return r.store.db.Collection(costsCollection)
}

func (r *costRepository) prepare(ctx context.Context, cost *models.Cost) error {
	if cost.CreatedAt.IsZero() {
		cost.CreatedAt = time.Now()
	}
	cost.CreatedAt = cost.CreatedAt.UTC()

	if err := cost.Validate(); err != nil {
		return err
	}

	seq, err := r.store.nextSequence(ctx, costsCollection)
	if err != nil {
		return err
	}
	cost.ID = uint(seq)

	return nil
}

func (r *costRepository) Create(ctx context.Context, cost *models.Cost) error {
	if cost == nil {
		return errors.New("cost cannot be nil")
	}

	if err := r.prepare(ctx, cost); err != nil {
		return err
	}

	if _, err := r.collection().InsertOne(ctx, cost); err != nil {
		return fmt.Errorf("failed to create cost: %w", err)
	}

	return nil
}

func (r *costRepository) CreateBatch(ctx context.Context, costs []models.Cost) error {
	if len(costs) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(costs))
	for i := range costs {
		if err := r.prepare(ctx, &costs[i]); err != nil {
			return err
		}
		docs = append(docs, costs[i])
	}

	if _, err := r.collection().InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to create costs: %w", err)
	}

	return nil
}

func (r *costRepository) FindByUserAndRange(ctx context.Context, userID int64, start, end time.Time) ([]models.Cost, error) {
	filter := bson.M{
		"userid":     userID,
		"created_at": bson.M{"$gte": start.UTC(), "$lt": end.UTC()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get costs by range: %w", err)
	}

	costs := []models.Cost{}
	if err := cursor.All(ctx, &costs); err != nil {
		return nil, fmt.Errorf("failed to decode costs: %w", err)
	}

	return costs, nil
}

func (r *costRepository) SumByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userid": userID}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$sum"}}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate total costs: %w", err)
	}

	var results []struct {
		Total decimal.Decimal `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode total costs: %w", err)
	}

	if len(results) == 0 {
		return decimal.Zero, nil
	}
	return results[0].Total, nil
}

type reportRepository struct {
	store *Store
}

// NewReportRepository returns a Mongo-backed report repository. The unique
// index created by EnsureIndexes settles concurrent writers.
func NewReportRepository(store *Store) repositories.ReportRepositoryInterface {
	return &reportRepository{store: store}
}

func (r *reportRepository) collection() *mongo.Collection {
	return r.store.db.Collection(reportsCollection)
}

func (r *reportRepository) FindByKey(ctx context.Context, key models.ReportKey) (*models.Report, error) {
	var report models.Report
	filter := bson.M{"userid": key.UserID, "year": key.Year, "month": key.Month}
	if err := r.collection().FindOne(ctx, filter).Decode(&report); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report %s: %w", key, err)
	}

	return &report, nil
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	if report == nil {
		return errors.New("report cannot be nil")
	}

	if err := report.Validate(); err != nil {
		return fmt.Errorf("invalid report: %w", err)
	}

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection().InsertOne(ctx, report); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrReportExists
		}
		return fmt.Errorf("failed to create report %s: %w", report.Key(), err)
	}

	return nil
}

type logRepository struct {
	store *Store
}

// NewLogRepository returns a Mongo-backed request log repository
func NewLogRepository(store *Store) repositories.LogRepositoryInterface {
	return &logRepository{store: store}
}

func (r *logRepository) collection() *mongo.Collection {
	return r.store.db.Collection(logsCollection)
}

func (r *logRepository) Create(ctx context.Context, log *models.Log) error {
	if log == nil {
		return errors.New("log cannot be nil")
	}

	log.Prepare()
	if err := log.Validate(); err != nil {
		return err
	}

	if _, err := r.collection().InsertOne(ctx, log); err != nil {
		return fmt.Errorf("failed to create log: %w", err)
	}

	return nil
}

func (r *logRepository) List(ctx context.Context, offset, limit int) ([]models.Log, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	logs := []models.Log{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode logs: %w", err)
	}

	return logs, nil
}
