package sqlite

import "time"

// ProfileRow mirrors the profiles table of the hosted schema. LinkHub keeps
// a single profile, stored under ProfileID.
type ProfileRow struct {
	ID          string `gorm:"primaryKey;size:64"`
	Name        string
	Bio         string
	Theme       string `gorm:"not null;default:'light'"`
	AccentColor string `gorm:"not null;default:'#3B82F6'"`
	Role        string `gorm:"not null;default:'admin'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProfileRow) TableName() string { return "profiles" }

// LinkRow mirrors the links table. Order is the display position.
type LinkRow struct {
	ID        string `gorm:"primaryKey;size:64"`
	ProfileID string `gorm:"index;not null;size:64"`
	Title     string `gorm:"not null"`
	URL       string `gorm:"not null"`
	Icon      string `gorm:"not null"`
	Order     int    `gorm:"column:order;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LinkRow) TableName() string { return "links" }

// SettingRow is a small key/value table for values that live outside the
// profile, such as the share URL.
type SettingRow struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"not null"`
}

func (SettingRow) TableName() string { return "settings" }
