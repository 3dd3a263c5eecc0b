package entity

import (
	"time"
)

// PatientRecord is an append-only visit record. Records are never updated or
// deleted by the application; deleting the owning patient cascades, deleting
// the authoring doctor only clears the doctor link.
type PatientRecord struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    uint       `gorm:"not null;index" json:"patient_id"`
	DoctorID     *uint      `gorm:"index" json:"doctor_id,omitempty"`
	VisitDate    time.Time  `gorm:"autoCreateTime;index" json:"visit_date"`
	Symptoms     string     `gorm:"type:text;not null" json:"symptoms"`
	Diagnosis    string     `gorm:"type:text;not null" json:"diagnosis"`
	Prescription string     `gorm:"type:text;not null" json:"prescription"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	NextVisit    *time.Time `gorm:"type:date" json:"next_visit,omitempty"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (PatientRecord) TableName() string {
	return "patient_records"
}
