package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeStatus estado laboral.
type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "active"
	EmployeeOnLeave    EmployeeStatus = "on-leave"
	EmployeeTerminated EmployeeStatus = "terminated"
)

func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeActive, EmployeeOnLeave, EmployeeTerminated:
		return true
	}
	return false
}

// Employee colaborador de planta u oficina.
type Employee struct {
	ID             string          `json:"id" yaml:"id"`
	EmployeeNumber string          `json:"employeeNumber" yaml:"employeeNumber"`
	FirstName      string          `json:"firstName" yaml:"firstName"`
	LastName       string          `json:"lastName" yaml:"lastName"`
	Position       string          `json:"position" yaml:"position"`
	Department     string          `json:"department" yaml:"department"`
	Email          string          `json:"email" yaml:"email"`
	Phone          string          `json:"phone" yaml:"phone"`
	HireDate       time.Time       `json:"hireDate" yaml:"hireDate"`
	Salary         decimal.Decimal `json:"salary" yaml:"salary"`
	Status         EmployeeStatus  `json:"status" yaml:"status"`
}

func (e Employee) GetID() string { return e.ID }

func (e Employee) WithID(id string) Employee {
	e.ID = id
	return e
}

func (Employee) Kind() Kind { return KindEmployee }

func (e Employee) SearchTerms() []string {
	return []string{e.EmployeeNumber, e.FirstName, e.LastName, e.Position, e.Email}
}

func (e Employee) Facet() string { return e.Department }

// FullName nombre y apellido.
func (e Employee) FullName() string { return e.FirstName + " " + e.LastName }
