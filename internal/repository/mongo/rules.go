package mongo

import (
	"context"

	"doctor/internal/repository/mongo/structs"
	usecaseStructs "doctor/internal/usecasees/structs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RulesRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewRulesRepository(conn *mongo.Client) *RulesRepository {
	collection := conn.Database("doctor").Collection("rules")

	return &RulesRepository{conn: conn, collection: collection}
}

// SetDefault seeds one rule per known issue type, skipping types already
// configured. STUCK_ORDER and QTY_MISMATCH ship disabled: both touch records
// that may still represent real capital.
func (r *RulesRepository) SetDefault() error {
	rules := []structs.Rule{
		{
			IssueType:          usecaseStructs.IssueOrderNotFound,
			AutoFixEnabled:     true,
			MaxFixesPerHour:    10,
			CooldownMinutes:    5,
			EscalationPriority: "LOW",
			Active:             true,
			Version:            1,
		},
		{
			IssueType:          usecaseStructs.IssueStuckOrder,
			AutoFixEnabled:     false,
			MaxFixesPerHour:    5,
			CooldownMinutes:    15,
			EscalationPriority: "MEDIUM",
			Active:             true,
			Version:            1,
		},
		{
			IssueType:          usecaseStructs.IssueOrderStatusMismatch,
			AutoFixEnabled:     true,
			MaxFixesPerHour:    10,
			CooldownMinutes:    5,
			EscalationPriority: "MEDIUM",
			Active:             true,
			Version:            1,
		},
		{
			IssueType:          usecaseStructs.IssuePhantomPosition,
			AutoFixEnabled:     true,
			MaxFixesPerHour:    5,
			CooldownMinutes:    10,
			EscalationPriority: "HIGH",
			Active:             true,
			Version:            1,
		},
		{
			IssueType:          usecaseStructs.IssueQtyMismatch,
			AutoFixEnabled:     false,
			MaxFixesPerHour:    3,
			CooldownMinutes:    30,
			EscalationPriority: "HIGH",
			Active:             true,
			Version:            1,
		},
	}

	for _, rule := range rules {
		check, err := r.Load(rule.IssueType)
		if err != nil && err != mongo.ErrNoDocuments {
			return err
		}

		if primitive.ObjectID.IsZero(check.ID) {
			_, err := r.collection.InsertOne(context.TODO(), rule)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *RulesRepository) Load(issueType string) (*structs.Rule, error) {
	var result structs.Rule

	if err := r.collection.FindOne(context.TODO(), bson.D{{Key: "issue_type", Value: issueType}}).Decode(&result); err != nil {
		return &result, err
	}

	return &result, nil
}

func (r *RulesRepository) List() ([]structs.Rule, error) {
	cursor, err := r.collection.Find(context.TODO(), bson.D{})
	if err != nil {
		return nil, err
	}

	var rules []structs.Rule
	if err := cursor.All(context.TODO(), &rules); err != nil {
		return nil, err
	}

	return rules, nil
}
