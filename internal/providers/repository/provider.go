package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	providerserrors "fundi/internal/providers/errors"
	"fundi/pkg/config"
	"fundi/pkg/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "Provider_profiles"

type ProviderRepository interface {
	Insert(ctx context.Context, profile *model.ProviderProfile) error
	FindByID(ctx context.Context, id string) (*model.ProviderProfile, error)
	FindByUserID(ctx context.Context, userID string) (*model.ProviderProfile, error)
	ListApprovedByCategory(ctx context.Context, categoryID string) ([]*model.ProviderProfile, error)
	ListByStatus(ctx context.Context, status model.ProviderStatus, limit int, offset int64) ([]*model.ProviderProfile, error)
	CountByStatus(ctx context.Context, status model.ProviderStatus) (int64, error)
	UpdateReview(ctx context.Context, id string, review *model.ProviderReview) (*model.ProviderProfile, error)
}

type mongoProviderRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoProviderRepository(cfg *config.Config) ProviderRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoProviderRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoProviderRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoProviderRepository) Insert(ctx context.Context, profile *model.ProviderProfile) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		// The unique user_id index makes one profile per user a storage
		// guarantee, not just a service-level check.
		if mongo.IsDuplicateKeyError(err) {
			return providerserrors.ErrDuplicateProfile
		}
		return fmt.Errorf("failed to insert provider profile: %w", err)
	}

	return nil
}

func (r *mongoProviderRepository) FindByID(ctx context.Context, id string) (*model.ProviderProfile, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoProviderRepository) FindByUserID(ctx context.Context, userID string) (*model.ProviderProfile, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *mongoProviderRepository) findOne(ctx context.Context, filter bson.M) (*model.ProviderProfile, error) {
	var profile model.ProviderProfile
	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, providerserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find provider profile: %w", err)
	}

	return &profile, nil
}

func (r *mongoProviderRepository) ListApprovedByCategory(ctx context.Context, categoryID string) ([]*model.ProviderProfile, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"category_id": categoryID,
		"status":      model.ProviderApproved,
	}

	return r.findMany(ctx, filter, options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}))
}

func (r *mongoProviderRepository) ListByStatus(ctx context.Context, status model.ProviderStatus, limit int, offset int64) ([]*model.ProviderProfile, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	return r.findMany(ctx, bson.M{"status": status}, opts)
}

func (r *mongoProviderRepository) CountByStatus(ctx context.Context, status model.ProviderStatus) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count provider profiles: %w", err)
	}
	return count, nil
}

// UpdateReview applies an admin decision. Approval flips is_verified on;
// rejection records the reason. Only pending applications can be
// reviewed, so the filter includes the status.
func (r *mongoProviderRepository) UpdateReview(ctx context.Context, id string, review *model.ProviderReview) (*model.ProviderProfile, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	set := bson.M{
		"status":     review.Status,
		"updated_at": time.Now().UTC().Truncate(time.Millisecond),
	}
	if review.Status == model.ProviderApproved {
		set["is_verified"] = true
	}
	if review.RejectionReason != "" {
		set["rejection_reason"] = review.RejectionReason
	}

	filter := bson.M{"_id": id, "status": model.ProviderPendingApproval}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile model.ProviderProfile
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, providerserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update provider review: %w", err)
	}

	return &profile, nil
}

func (r *mongoProviderRepository) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.ProviderProfile, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find provider profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []*model.ProviderProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode provider profiles: %w", err)
	}

	return profiles, nil
}
