package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talantmuenster/telebot/internal/model"
)

const submissionsCollection = "submissions"

// Mongo is the document-store backed Store implementation.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// submissionDoc is the stored shape of a submission. The model stays
// free of storage tags; this adapter owns the mapping.
type submissionDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ChatID    int64              `bson:"chat_id"`
	Text      string             `bson:"text"`
	PhotoID   string             `bson:"photo,omitempty"`
	Favorite  bool               `bson:"favorite"`
	Selected  bool               `bson:"selected"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *submissionDoc) toModel() *model.Submission {
	return &model.Submission{
		ID:        d.ID.Hex(),
		ChatID:    d.ChatID,
		Text:      d.Text,
		PhotoID:   d.PhotoID,
		Favorite:  d.Favorite,
		Selected:  d.Selected,
		CreatedAt: d.CreatedAt,
	}
}

// OpenMongo connects to the given URI and pings the deployment before
// returning, so credential problems surface at startup.
func OpenMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}
	return &Mongo{
		client: client,
		coll:   client.Database(database).Collection(submissionsCollection),
	}, nil
}

func (m *Mongo) Create(ctx context.Context, sub *model.Submission) (*model.Submission, error) {
	doc := submissionDoc{
		ID:        primitive.NewObjectID(),
		ChatID:    sub.ChatID,
		Text:      sub.Text,
		PhotoID:   sub.PhotoID,
		Favorite:  sub.Favorite,
		Selected:  sub.Selected,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("inserting submission: %w", err)
	}
	return doc.toModel(), nil
}

func (m *Mongo) List(ctx context.Context, filter model.Filter) ([]*model.Submission, error) {
	query := bson.M{}
	switch filter {
	case model.FilterFavorite:
		query["favorite"] = true
	case model.FilterSelected:
		query["selected"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := m.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var subs []*model.Submission
	for cursor.Next(ctx) {
		var doc submissionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding submission: %w", err)
		}
		subs = append(subs, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}

func (m *Mongo) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc submissionDoc
	err = m.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching submission %s: %w", id, err)
	}
	return doc.toModel(), nil
}

func (m *Mongo) Update(ctx context.Context, id string, updates Updates) error {
	if updates.IsEmpty() {
		return nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{}
	if updates.Favorite != nil {
		set["favorite"] = *updates.Favorite
	}
	if updates.Selected != nil {
		set["selected"] = *updates.Selected
	}

	_, err = m.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("updating submission %s: %w", id, err)
	}
	return nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
