package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/GoSim-25-26J-441/projects-service/internal/projects/domain"
)

// projectDocument is the stored shape of a project in MongoDB.
type projectDocument struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	ProjectID         string             `bson:"project_id"`
	ProjectName       string             `bson:"project_name"`
	ProjectDesc       string             `bson:"project_desc"`
	MembersList       []string           `bson:"members_list"`
	NumOfHardwareSets int                `bson:"num_of_hardware_sets"`
	HardwareSetID     []string           `bson:"hardware_set_id"`
}

// normalize converts a stored document into its API form. nil stays nil.
func normalize(doc *projectDocument) *domain.Project {
	if doc == nil {
		return nil
	}
	p := domain.NewProject(doc.ProjectID, doc.ProjectName, doc.ProjectDesc, doc.MembersList, doc.NumOfHardwareSets, doc.HardwareSetID)
	p.ID = normalizeID(doc.ID)
	return &p
}

// MongoRepository stores projects in a single MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a repository over the given collection.
func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

// EnsureIndexes creates the unique index on project_id.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: domain.FieldProjectID, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("project_id_unique"),
	})
	if err != nil {
		return fmt.Errorf("create project_id index: %w", err)
	}
	return nil
}

// Create inserts p and reads it back by its new _id.
func (r *MongoRepository) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	res, err := r.coll.InsertOne(ctx, bson.M(p.ToMapping()))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	var doc projectDocument
	if err := r.coll.FindOne(ctx, bson.M{domain.FieldID: res.InsertedID}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("read inserted project: %w", err)
	}
	return normalize(&doc), nil
}

// List returns every project in collection order.
func (r *MongoRepository) List(ctx context.Context) ([]domain.Project, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}

	var docs []projectDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	out := make([]domain.Project, 0, len(docs))
	for i := range docs {
		out = append(out, *normalize(&docs[i]))
	}
	return out, nil
}

// GetByProjectID returns the project with the given business key.
func (r *MongoRepository) GetByProjectID(ctx context.Context, projectID string) (*domain.Project, error) {
	var doc projectDocument
	err := r.coll.FindOne(ctx, bson.M{domain.FieldProjectID: projectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find project %q: %w", projectID, err)
	}
	return normalize(&doc), nil
}

// Update $sets the given fields on the matching project and returns the result.
func (r *MongoRepository) Update(ctx context.Context, projectID string, fields map[string]interface{}) (*domain.Project, error) {
	fields = sanitizeFields(fields)
	if len(fields) == 0 {
		return r.GetByProjectID(ctx, projectID)
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{domain.FieldProjectID: projectID},
		bson.M{"$set": bson.M(fields)},
	)
	if err != nil {
		return nil, fmt.Errorf("update project %q: %w", projectID, err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByProjectID(ctx, projectID)
}

// Delete removes the matching project and reports whether one was removed.
func (r *MongoRepository) Delete(ctx context.Context, projectID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{domain.FieldProjectID: projectID})
	if err != nil {
		return false, fmt.Errorf("delete project %q: %w", projectID, err)
	}
	return res.DeletedCount > 0, nil
}
