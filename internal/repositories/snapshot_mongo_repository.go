package repositories

import (
	"context"
	"fmt"

	"alexsimon-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snapshotDocumentID = "current"

// snapshotDocument wraps the snapshot in a fixed-id document so ReplaceOne
// with upsert gives the all-or-nothing replacement the store contract asks
// for.
type snapshotDocument struct {
	ID       string           `bson:"_id"`
	Snapshot *models.Snapshot `bson:"snapshot"`
}

type snapshotMongoStore struct {
	collection *mongo.Collection
}

func NewSnapshotMongoStore(db *mongo.Database) SnapshotStore {
	return &snapshotMongoStore{collection: db.Collection("snapshots")}
}

func (s *snapshotMongoStore) Read(ctx context.Context) (*models.Snapshot, error) {
	var doc snapshotDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": snapshotDocumentID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.EmptySnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot read failed: %v", err)
	}
	if doc.Snapshot == nil {
		return models.EmptySnapshot(), nil
	}
	if doc.Snapshot.Properties == nil {
		doc.Snapshot.Properties = []models.Property{}
	}
	return doc.Snapshot, nil
}

func (s *snapshotMongoStore) Write(ctx context.Context, snapshot *models.Snapshot) error {
	doc := snapshotDocument{ID: snapshotDocumentID, Snapshot: snapshot}
	_, err := s.collection.ReplaceOne(
		ctx,
		bson.M{"_id": snapshotDocumentID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("snapshot write failed: %v", err)
	}
	return nil
}
