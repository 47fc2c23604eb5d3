package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
)

const collectionCandidates = "candidates"

type CandidateRepository struct {
	coll *mongo.Collection
}

func NewCandidateRepository(db *mongo.Database) *CandidateRepository {
	return &CandidateRepository{coll: db.Collection(collectionCandidates)}
}

type mongoCandidate struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FullName     string             `bson:"full_name"`
	Availability float64            `bson:"availability"`
	Role         string             `bson:"role"`
	Skills       []string           `bson:"skills"`
	Motivation   string             `bson:"motivation"`
	Tools        []string           `bson:"tools"`
	GithubRepo   string             `bson:"github_repo,omitempty"`
	Email        string             `bson:"email"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// Create inserts a new candidate document. The unique email index turns a
// concurrent duplicate into domain.ErrDuplicateEmail instead of a second row.
func (r *CandidateRepository) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCandidate{
		FullName:     c.FullName,
		Availability: c.Availability,
		Role:         c.Role,
		Skills:       c.Skills,
		Motivation:   c.Motivation,
		Tools:        c.Tools,
		GithubRepo:   c.GithubRepo,
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert candidate: %w", err)
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByEmail retrieves a candidate by email.
func (r *CandidateRepository) FindByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCandidate
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("find candidate: %w", err)
	}
	return mc.toDomain(), nil
}

// FindAll returns every candidate, oldest first.
func (r *CandidateRepository) FindAll(ctx context.Context) ([]*domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Candidate
	for cursor.Next(ctx) {
		var mc mongoCandidate
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode candidate: %w", err)
		}
		out = append(out, mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return out, nil
}

// EnsureIndexes creates the unique email index — the authoritative guard
// against duplicate submissions racing past the application-level check.
func (r *CandidateRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (mc mongoCandidate) toDomain() *domain.Candidate {
	tools := mc.Tools
	if tools == nil {
		tools = []string{}
	}
	return &domain.Candidate{
		ID:           mc.ID.Hex(),
		FullName:     mc.FullName,
		Availability: mc.Availability,
		Role:         mc.Role,
		Skills:       mc.Skills,
		Motivation:   mc.Motivation,
		Tools:        tools,
		GithubRepo:   mc.GithubRepo,
		Email:        mc.Email,
		CreatedAt:    mc.CreatedAt,
	}
}
