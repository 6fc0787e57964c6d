package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/boxlayout/pkg/geom"
	"github.com/matzehuels/boxlayout/pkg/layout"
)

const (
	// DefaultMongoDatabase is the database used when none is configured.
	DefaultMongoDatabase = "boxlayout"

	// MongoCollection holds one document per record.
	MongoCollection = "layouts"
)

// MongoStore stores records in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to uri and verifies the connection.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = DefaultMongoDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(MongoCollection),
	}, nil
}

// recordDoc is the stored form of a [Record]. Items are kept as an array so
// identities never become field names.
type recordDoc struct {
	ID        string    `bson:"_id"`
	Viewport  geom.Rect `bson:"viewport"`
	Tree      string    `bson:"tree"`
	TreeHash  string    `bson:"tree_hash,omitempty"`
	UISpace   geom.Rect `bson:"ui_space"`
	Items     []itemDoc `bson:"items"`
	CreatedAt time.Time `bson:"created_at"`
}

type itemDoc struct {
	ID         string    `bson:"id"`
	LocalSpace geom.Rect `bson:"local_space"`
	UISpace    geom.Rect `bson:"ui_space"`
}

func toDoc(rec *Record) recordDoc {
	doc := recordDoc{
		ID:        rec.ID,
		Viewport:  rec.Viewport,
		Tree:      string(rec.Tree),
		TreeHash:  rec.TreeHash,
		UISpace:   rec.Layout.UISpace,
		Items:     make([]itemDoc, 0, rec.Layout.Len()),
		CreatedAt: rec.CreatedAt,
	}
	for _, id := range rec.Layout.IDs() {
		it := rec.Layout.Items[id]
		doc.Items = append(doc.Items, itemDoc{ID: id, LocalSpace: it.LocalSpace, UISpace: it.UISpace})
	}
	return doc
}

func fromDoc(doc recordDoc) *Record {
	l := layout.Layout{UISpace: doc.UISpace, Items: make(map[string]layout.Item, len(doc.Items))}
	for _, it := range doc.Items {
		l.Items[it.ID] = layout.Item{LocalSpace: it.LocalSpace, UISpace: it.UISpace}
	}
	return &Record{
		ID:        doc.ID,
		Viewport:  doc.Viewport,
		Tree:      []byte(doc.Tree),
		TreeHash:  doc.TreeHash,
		Layout:    l,
		CreatedAt: doc.CreatedAt,
	}
}

func (s *MongoStore) Get(ctx context.Context, id string) (*Record, error) {
	var doc recordDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("find record: %w", err)
	}
	return fromDoc(doc), nil
}

func (s *MongoStore) Put(ctx context.Context, rec *Record) error {
	if err := ValidateID(rec.ID); err != nil {
		return err
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, toDoc(rec), options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store record: %w", err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
