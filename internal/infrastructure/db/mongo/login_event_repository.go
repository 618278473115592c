package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

const collectionLoginEvents = "login_events"

// LoginEventRepository appends token issuance records to the login_events
// collection. Records are never read back by the application.
type LoginEventRepository struct {
	col *mongo.Collection
}

func NewLoginEventRepository(db *mongo.Database) *LoginEventRepository {
	return &LoginEventRepository{col: db.Collection(collectionLoginEvents)}
}

// Insert persists a single login event.
func (r *LoginEventRepository) Insert(ctx context.Context, event domain.LoginEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"username":    event.Username,
		"token_id":    event.TokenID,
		"remote_ip":   event.RemoteIP,
		"issued_at":   event.IssuedAt.UTC(),
		"expires_at":  event.ExpiresAt.UTC(),
		"recorded_at": time.Now().UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert login event: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes used for ad-hoc audit queries.
func (r *LoginEventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "issued_at", Value: -1}}},
		{Keys: bson.D{{Key: "token_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
