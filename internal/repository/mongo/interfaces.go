package mongo

import (
	"doctor/internal/repository/mongo/structs"
)

//go:generate mockery --case=snake --name=RulesRepo

type RulesRepo interface {
	SetDefault() error
	Load(issueType string) (*structs.Rule, error)
	List() ([]structs.Rule, error)
}
