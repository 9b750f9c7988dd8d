package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/GoSim-25-26J-441/projects-service/internal/projects/domain"
)

// ProjectStore is the persistence contract for project records.
// Implementations return domain.ErrNotFound for unknown keys and
// domain.ErrDuplicate when a project_id is already taken.
type ProjectStore interface {
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	GetByProjectID(ctx context.Context, projectID string) (*domain.Project, error)
	Update(ctx context.Context, projectID string, fields map[string]interface{}) (*domain.Project, error)
	Delete(ctx context.Context, projectID string) (bool, error)
}

// normalizeID renders a store-assigned identifier as a string.
// Strings pass through unchanged, so calling it twice is harmless.
func normalizeID(id interface{}) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// updatable lists the fields a partial update may touch.
var updatable = map[string]struct{}{
	domain.FieldProjectName:       {},
	domain.FieldProjectDesc:       {},
	domain.FieldMembersList:       {},
	domain.FieldNumOfHardwareSets: {},
	domain.FieldHardwareSetID:     {},
}

// sanitizeFields drops project_id, _id and anything unknown from an update.
func sanitizeFields(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if _, ok := updatable[k]; ok {
			out[k] = v
		}
	}
	return out
}

// sortedKeys gives a stable column order for generated statements.
func sortedKeys(fields map[string]interface{}) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// applyFields merges a sanitized field set into p.
func applyFields(p *domain.Project, fields map[string]interface{}) error {
	for k, v := range fields {
		switch k {
		case domain.FieldProjectName:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("%s: expected string, got %T", k, v)
			}
			p.ProjectName = s
		case domain.FieldProjectDesc:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("%s: expected string, got %T", k, v)
			}
			p.ProjectDesc = s
		case domain.FieldMembersList:
			s, ok := v.([]string)
			if !ok {
				return fmt.Errorf("%s: expected []string, got %T", k, v)
			}
			p.MembersList = append([]string{}, s...)
		case domain.FieldNumOfHardwareSets:
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("%s: expected int, got %T", k, v)
			}
			p.NumOfHardwareSets = n
		case domain.FieldHardwareSetID:
			s, ok := v.([]string)
			if !ok {
				return fmt.Errorf("%s: expected []string, got %T", k, v)
			}
			p.HardwareSetID = append([]string{}, s...)
		}
	}
	return nil
}
