package entity

import "time"

// QualityStatus resultado de la inspección.
type QualityStatus string

const (
	QualityPending QualityStatus = "pending"
	QualityPassed  QualityStatus = "passed"
	QualityFailed  QualityStatus = "failed"
	QualityRework  QualityStatus = "rework"
)

func (s QualityStatus) Valid() bool {
	switch s {
	case QualityPending, QualityPassed, QualityFailed, QualityRework:
		return true
	}
	return false
}

// QualityControl inspección de calidad sobre un lote de una orden de producción.
type QualityControl struct {
	ID                string        `json:"id" yaml:"id"`
	InspectionNumber  string        `json:"inspectionNumber" yaml:"inspectionNumber"`
	ProductionOrderID string        `json:"productionOrderId" yaml:"productionOrderId"`
	ProductName       string        `json:"productName" yaml:"productName"`
	Inspector         string        `json:"inspector" yaml:"inspector"`
	InspectionDate    time.Time     `json:"inspectionDate" yaml:"inspectionDate"`
	SampleSize        int           `json:"sampleSize" yaml:"sampleSize"`
	DefectsFound      int           `json:"defectsFound" yaml:"defectsFound"`
	Notes             string        `json:"notes" yaml:"notes"`
	Status            QualityStatus `json:"status" yaml:"status"`
}

func (q QualityControl) GetID() string { return q.ID }

func (q QualityControl) WithID(id string) QualityControl {
	q.ID = id
	return q
}

func (QualityControl) Kind() Kind { return KindQualityControl }

func (q QualityControl) SearchTerms() []string {
	return []string{q.InspectionNumber, q.ProductName, q.Inspector}
}

func (q QualityControl) Facet() string { return string(q.Status) }
