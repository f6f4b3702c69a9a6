package di

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/devtutor/devtutor-go/internal/config"
)

// MongoDatabase wraps *mongo.Database and its client.
type MongoDatabase struct {
	DB     *mongo.Database
	Client *mongo.Client
}

// DatabaseModule provides MongoDB and Redis dependencies
var DatabaseModule = fx.Module("database",
	fx.Provide(
		provideMongoDatabase,
		provideRedisClient,
	),
	fx.Invoke(createMongoIndexes),
)

// provideMongoDatabase creates a MongoDB database connection.
func provideMongoDatabase(lc fx.Lifecycle, cfg *config.DatabaseConfig, logger *zap.Logger) (*MongoDatabase, error) {
	logger.Info("Connecting to MongoDB",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeout)
	defer cancel()

	clientOpts := options.Client().ApplyURI(cfg.URI())
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.Name)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MongoDB connection")
			return client.Disconnect(ctx)
		},
	})

	return &MongoDatabase{DB: db, Client: client}, nil
}

// provideRedisClient creates the Redis client used for webhook replay
// protection and scheduler coordination.
func provideRedisClient(lc fx.Lifecycle, cfg *config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Connected to Redis",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis connection")
			return client.Close()
		},
	})

	return client, nil
}

// createMongoIndexes creates the indexes each collection relies on.
func createMongoIndexes(mongoDB *MongoDatabase, logger *zap.Logger) error {
	ctx := context.Background()
	db := mongoDB.DB

	// Users collection indexes
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Sparse: only webhook-provisioned users carry an external id.
			Keys:    bson.D{{Key: "external_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		logger.Error("Failed to create user indexes", zap.Error(err))
		return err
	}

	// Refresh tokens collection indexes
	tokenIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "expires_at", Value: 1}},
		},
	}
	if _, err := db.Collection("refresh_tokens").Indexes().CreateMany(ctx, tokenIndexes); err != nil {
		logger.Error("Failed to create refresh token indexes", zap.Error(err))
		return err
	}

	// Blogs collection indexes
	blogIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "author_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}},
		},
	}
	if _, err := db.Collection("blogs").Indexes().CreateMany(ctx, blogIndexes); err != nil {
		logger.Error("Failed to create blog indexes", zap.Error(err))
		return err
	}

	// Courses collection indexes
	courseIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "instructor_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "is_published", Value: 1}, {Key: "category", Value: 1}},
		},
	}
	if _, err := db.Collection("courses").Indexes().CreateMany(ctx, courseIndexes); err != nil {
		logger.Error("Failed to create course indexes", zap.Error(err))
		return err
	}

	logger.Info("MongoDB indexes created successfully")
	return nil
}
