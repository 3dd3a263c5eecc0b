package entity

import (
	"time"
)

// Clinic belongs to exactly one hospital and is removed with it.
type Clinic struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string `gorm:"type:varchar(200);not null" json:"name"`
	ClinicType         string `gorm:"type:varchar(20);not null;default:'general'" json:"clinic_type"`
	RegistrationNumber string `gorm:"type:varchar(50);uniqueIndex;not null" json:"registration_number"`
	LicenseNumber      string `gorm:"type:varchar(50);not null" json:"license_number"`
	EstablishmentYear  *int   `json:"establishment_year,omitempty"`
	HospitalID         uint   `gorm:"not null;index" json:"hospital_id"`
	Specialization     string `gorm:"type:varchar(200);not null" json:"specialization"`

	// Contact
	Email           string  `gorm:"type:varchar(255)" json:"email"`
	ContactNumber   string  `gorm:"type:varchar(15);not null" json:"contact_number"`
	AlternateNumber *string `gorm:"type:varchar(15)" json:"alternate_number,omitempty"`
	WhatsappNumber  *string `gorm:"type:varchar(15)" json:"whatsapp_number,omitempty"`
	Website         *string `gorm:"type:varchar(255)" json:"website,omitempty"`

	// Address
	StreetAddress string `gorm:"type:varchar(255)" json:"street_address"`
	City          string `gorm:"type:varchar(100)" json:"city"`
	State         string `gorm:"type:varchar(100)" json:"state"`
	PostalCode    string `gorm:"type:varchar(20)" json:"postal_code"`
	Country       string `gorm:"type:varchar(100)" json:"country"`

	// Owner
	OwnerName   string `gorm:"type:varchar(100)" json:"owner_name"`
	CNICNumber  string `gorm:"column:cnic_number;type:varchar(20)" json:"cnic_number"`
	Designation string `gorm:"type:varchar(100)" json:"designation"`
	OwnerMobile string `gorm:"type:varchar(15)" json:"owner_mobile"`
	OwnerEmail  string `gorm:"type:varchar(255)" json:"owner_email"`

	RegistrationDate time.Time `gorm:"autoCreateTime" json:"registration_date"`

	// Relationships
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Doctors  []Doctor  `gorm:"foreignKey:ClinicID;constraint:OnDelete:SET NULL" json:"doctors,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}

// Clinic type constants
const (
	ClinicTypeGeneral       = "general"
	ClinicTypeDental        = "dental"
	ClinicTypeEye           = "eye"
	ClinicTypePhysiotherapy = "physiotherapy"
	ClinicTypeHomeopathy    = "homeopathy"
	ClinicTypeCardiology    = "cardiology"
	ClinicTypeDermatology   = "dermatology"
	ClinicTypeNeurology     = "neurology"
	ClinicTypeOrthopedic    = "orthopedic"
	ClinicTypePediatric     = "pediatric"
	ClinicTypeGynecology    = "gynecology"
	ClinicTypeOther         = "other"
)
