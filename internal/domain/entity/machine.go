package entity

import "time"

// MachineStatus estado operativo de una máquina de planta.
type MachineStatus string

const (
	MachineOperational MachineStatus = "operational"
	MachineMaintenance MachineStatus = "maintenance"
	MachineIdle        MachineStatus = "idle"
	MachineError       MachineStatus = "error"
)

func (s MachineStatus) Valid() bool {
	switch s {
	case MachineOperational, MachineMaintenance, MachineIdle, MachineError:
		return true
	}
	return false
}

// Machine equipo de producción. Efficiency es un porcentaje 0-100 (OEE reportado).
type Machine struct {
	ID              string        `json:"id" yaml:"id"`
	Code            string        `json:"code" yaml:"code"`
	Name            string        `json:"name" yaml:"name"`
	Type            string        `json:"type" yaml:"type"`
	Location        string        `json:"location" yaml:"location"`
	Efficiency      float64       `json:"efficiency" yaml:"efficiency"`
	LastMaintenance time.Time     `json:"lastMaintenance" yaml:"lastMaintenance"`
	NextMaintenance time.Time     `json:"nextMaintenance" yaml:"nextMaintenance"`
	Status          MachineStatus `json:"status" yaml:"status"`
}

func (m Machine) GetID() string { return m.ID }

func (m Machine) WithID(id string) Machine {
	m.ID = id
	return m
}

func (Machine) Kind() Kind { return KindMachine }

func (m Machine) SearchTerms() []string { return []string{m.Code, m.Name, m.Type, m.Location} }

func (m Machine) Facet() string { return string(m.Status) }
