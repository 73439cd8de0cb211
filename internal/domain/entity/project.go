package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus estado del proyecto.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Project proyecto de ingeniería o de cliente. Progress 0-100.
type Project struct {
	ID        string          `json:"id" yaml:"id"`
	Code      string          `json:"code" yaml:"code"`
	Name      string          `json:"name" yaml:"name"`
	Client    string          `json:"client" yaml:"client"`
	Manager   string          `json:"manager" yaml:"manager"`
	StartDate time.Time       `json:"startDate" yaml:"startDate"`
	EndDate   time.Time       `json:"endDate" yaml:"endDate"`
	Budget    decimal.Decimal `json:"budget" yaml:"budget"`
	Spent     decimal.Decimal `json:"spent" yaml:"spent"`
	Progress  int             `json:"progress" yaml:"progress"`
	Status    ProjectStatus   `json:"status" yaml:"status"`
}

func (p Project) GetID() string { return p.ID }

func (p Project) WithID(id string) Project {
	p.ID = id
	return p
}

func (Project) Kind() Kind { return KindProject }

func (p Project) SearchTerms() []string { return []string{p.Code, p.Name, p.Client, p.Manager} }

func (p Project) Facet() string { return string(p.Status) }
