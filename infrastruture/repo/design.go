package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dmn "github.com/beka-birhanu/maze-forge-api/domain"
)

// DesignRepo handles the persistence of saved maze designs.
type DesignRepo struct {
	collection *mongo.Collection
}

// NewDesignRepo creates a new DesignRepo with the given MongoDB client, database name, and collection name.
func NewDesignRepo(client *mongo.Client, dbName, collectionName string) *DesignRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &DesignRepo{
		collection: collection,
	}
}

// Save inserts or updates a design in the repository.
func (d *DesignRepo) Save(design *dmn.MazeDesign) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	filter := bson.M{"_id": design.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":      design.OwnerID,
			"name":         design.Name,
			"parameters":   design.Parameters,
			"segmentCount": design.SegmentCount,
			"source":       design.Source,
			"preview":      design.Preview,
			"createdAt":    design.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := d.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a design by its ID.
// Returns an error if the design is not found or if an unexpected error occurs.
func (d *DesignRepo) ByID(id uuid.UUID) (*dmn.MazeDesign, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var design dmn.MazeDesign
	if err := d.collection.FindOne(ctx, filter).Decode(&design); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("design not found")
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &design, nil
}

// ByOwner retrieves every design saved by the given user, newest first.
func (d *DesignRepo) ByOwner(ownerID uuid.UUID) ([]*dmn.MazeDesign, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"ownerId": ownerID}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var designs []*dmn.MazeDesign
	if err := cursor.All(ctx, &designs); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return designs, nil
}
