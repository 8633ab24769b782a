package structs

import "go.mongodb.org/mongo-driver/bson/primitive"

// Rule is the operator-configured auto-fix policy for one issue type.
// The engine only ever reads these documents.
type Rule struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	IssueType          string             `bson:"issue_type"`
	AutoFixEnabled     bool               `bson:"auto_fix_enabled"`
	MaxFixesPerHour    int                `bson:"max_fixes_per_hour"`
	CooldownMinutes    int                `bson:"cooldown_minutes"`
	EscalationPriority string             `bson:"escalation_priority"`
	Active             bool               `bson:"active"`
	Version            int                `bson:"version"`
}
