package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

const (
	simulationsCollection = "lactation_simulations"
	defaultListLimit      = 20
	maxListLimit          = 200
)

// Repository defines the interface for simulation history storage.
type Repository interface {
	SaveSimulation(ctx context.Context, record models.SimulationRecord) (string, error)
	ListSimulations(ctx context.Context, breedKey string, limit int) ([]models.SimulationRecord, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	repo := &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: simulationsCollection,
	}

	index := mongo.IndexModel{
		Keys: bson.D{{Key: "result.breed_key", Value: 1}, {Key: "created_at", Value: -1}},
	}
	if _, err := repo.collection().Indexes().CreateOne(ctx, index); err != nil {
		return nil, fmt.Errorf("failed to create simulations index: %w", err)
	}

	return repo, nil
}

// SaveSimulation stores a simulation and returns its generated id.
func (r *MongoDBRepository) SaveSimulation(ctx context.Context, record models.SimulationRecord) (string, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.collection().InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("failed to insert simulation: %w", err)
	}
	return record.ID, nil
}

// ListSimulations returns the newest simulations, optionally restricted to one breed.
func (r *MongoDBRepository) ListSimulations(ctx context.Context, breedKey string, limit int) ([]models.SimulationRecord, error) {
	filter := bson.M{}
	if breedKey != "" {
		filter["result.breed_key"] = breedKey
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(ClampLimit(limit)))

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulations: %w", err)
	}

	records := []models.SimulationRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode simulations: %w", err)
	}
	return records, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// ClampLimit bounds a requested page size to [1, 200], defaulting to 20.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
