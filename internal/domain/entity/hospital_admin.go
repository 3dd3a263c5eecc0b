package entity

import (
	"time"
)

// HospitalAdmin is the capability row that makes a User an administrator of
// one hospital. Dashboard queries are always scoped through HospitalID.
type HospitalAdmin struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	HospitalID    uint      `gorm:"not null;index" json:"hospital_id"`
	Position      string    `gorm:"type:varchar(100);not null" json:"position"`
	ContactNumber string    `gorm:"type:varchar(15);not null" json:"contact_number"`
	JoinDate      time.Time `gorm:"autoCreateTime" json:"join_date"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"hospital,omitempty"`
}

func (HospitalAdmin) TableName() string {
	return "hospital_admins"
}
