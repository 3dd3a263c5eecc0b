package entity

import (
	"time"
)

// Hospital represents a registered hospital. A hospital may exist without a
// login user (placeholder rows auto-created during clinic registration), but
// logging in as a hospital requires the linked User.
type Hospital struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             *uint  `gorm:"index" json:"user_id,omitempty"`
	Name               string `gorm:"type:varchar(200);not null" json:"name"`
	RegistrationNumber string `gorm:"type:varchar(50);not null;default:'REG-00000'" json:"registration_number"`
	HospitalType       string `gorm:"type:varchar(20);not null;default:'private'" json:"hospital_type"`

	// Address
	StreetAddress string `gorm:"type:varchar(255)" json:"street_address"`
	City          string `gorm:"type:varchar(100)" json:"city"`
	State         string `gorm:"type:varchar(100)" json:"state"`
	PostalCode    string `gorm:"type:varchar(20)" json:"postal_code"`
	Country       string `gorm:"type:varchar(100)" json:"country"`

	// Contact
	ContactPersonName string  `gorm:"type:varchar(100)" json:"contact_person_name"`
	Designation       string  `gorm:"type:varchar(100)" json:"designation"`
	ContactNumber     string  `gorm:"type:varchar(15);not null" json:"contact_number"`
	Email             string  `gorm:"type:varchar(255);not null" json:"email"`
	AlternateContact  *string `gorm:"type:varchar(15)" json:"alternate_contact,omitempty"`
	FaxNumber         *string `gorm:"type:varchar(15)" json:"fax_number,omitempty"`

	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Clinics  []Clinic  `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"clinics,omitempty"`
	Patients []Patient `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"patients,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

// Hospital type constants
const (
	HospitalTypePublic   = "public"
	HospitalTypePrivate  = "private"
	HospitalTypeMilitary = "military"
	HospitalTypeTrust    = "trust"
	HospitalTypeNGO      = "ngo"
)

// Sentinel contact fields for hospitals auto-created during clinic
// registration when no existing hospital matches the supplied name.
const (
	PlaceholderContactNumber = "0000000000"
	PlaceholderEmail         = "temp@example.com"
)
