package entity

import (
	"time"
)

// Patient is registered at exactly one hospital and is removed with it.
// MRNumber is the external medical-record handle: generated at registration,
// unique for the lifetime of the system, never reused.
type Patient struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	MRNumber      string     `gorm:"column:mr_number;type:varchar(20);uniqueIndex;not null" json:"mr_number"`
	FirstName     string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName      string     `gorm:"type:varchar(100);not null" json:"last_name"`
	DateOfBirth   time.Time  `gorm:"type:date;not null" json:"date_of_birth"`
	Gender        string     `gorm:"type:varchar(10);not null" json:"gender"`
	BloodGroup    string     `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Address       string     `gorm:"type:text;not null" json:"address"`
	ContactNumber string     `gorm:"type:varchar(15);not null" json:"contact_number"`
	Email         string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	HospitalID    uint       `gorm:"not null;index" json:"hospital_id"`
	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`

	// Relationships
	Hospital *Hospital       `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Records  []PatientRecord `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"records,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)
