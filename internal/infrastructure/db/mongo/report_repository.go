package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
)

const reportCollection = "reports"

type MongoReportRepository struct {
	coll *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *MongoReportRepository {
	return &MongoReportRepository{coll: db.Collection(reportCollection)}
}

type mongoReport struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CalendarWeek int                `bson:"calendar_week"`
	Year         int                `bson:"year"`
	Scores       map[string]float64 `bson:"scores"`
	Notes        string             `bson:"notes,omitempty"`
	UserEmail    string             `bson:"user_email"`
}

func (r *MongoReportRepository) ListByUser(ctx context.Context, userEmail string) ([]domain.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "calendar_week", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_email": userEmail}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []domain.Report
	for cursor.Next(ctx) {
		var mr mongoReport
		if err := cursor.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		reports = append(reports, mr.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// Upsert replaces the user's report for (calendarWeek, year), creating it
// when none exists. A user has at most one report per week.
func (r *MongoReportRepository) Upsert(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	filter := bson.M{
		"user_email":    report.UserEmail,
		"calendar_week": report.CalendarWeek,
		"year":          report.Year,
	}
	doc := mongoReport{
		CalendarWeek: report.CalendarWeek,
		Year:         report.Year,
		Scores:       report.Scores,
		Notes:        report.Notes,
		UserEmail:    report.UserEmail,
	}

	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored mongoReport
	if err := r.coll.FindOneAndReplace(ctx, filter, doc, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("upsert report: %w", err)
	}

	result := stored.toDomain()
	return &result, nil
}

func (mr mongoReport) toDomain() domain.Report {
	return domain.Report{
		ID:           mr.ID.Hex(),
		CalendarWeek: mr.CalendarWeek,
		Year:         mr.Year,
		Scores:       mr.Scores,
		Notes:        mr.Notes,
		UserEmail:    mr.UserEmail,
	}
}
