package entity

import (
	"time"
)

// Doctor is the capability row that makes a User a doctor. The clinic link is
// optional and cleared when the clinic is deleted.
type Doctor struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	ClinicID       *uint     `gorm:"index" json:"clinic_id,omitempty"`
	Specialization string    `gorm:"type:varchar(200);not null" json:"specialization"`
	LicenseNumber  string    `gorm:"type:varchar(50);not null" json:"license_number"`
	ContactNumber  string    `gorm:"type:varchar(15)" json:"contact_number"`
	JoinDate       time.Time `gorm:"autoCreateTime" json:"join_date"`

	// Relationships
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Clinic *Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
