package models

import "time"

// SalonSettingsID is the document key of the single settings record.
const SalonSettingsID = "salon"

type SalonSettings struct {
	ID           string    `bson:"id" json:"-"`
	Name         string    `bson:"name" json:"name"`
	Tagline      string    `bson:"tagline,omitempty" json:"tagline,omitempty"`
	Address      string    `bson:"address" json:"address"`
	Phone        string    `bson:"phone" json:"phone"`
	WhatsApp     string    `bson:"whatsapp" json:"whatsapp"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	OpeningHours string    `bson:"openingHours" json:"openingHours"`
	Instagram    string    `bson:"instagram,omitempty" json:"instagram,omitempty"`
	BookingsOpen bool      `bson:"bookingsOpen" json:"bookingsOpen"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSalonSettings is served until an admin saves settings.
func DefaultSalonSettings() SalonSettings {
	return SalonSettings{
		ID:           SalonSettingsID,
		Name:         "Salonify Studio",
		Address:      "",
		OpeningHours: "10:00 AM - 9:00 PM",
		BookingsOpen: true,
	}
}

// SalonSettingsUpdate carries editable settings. Nil fields are left alone.
type SalonSettingsUpdate struct {
	Name         *string `json:"name,omitempty"`
	Tagline      *string `json:"tagline,omitempty"`
	Address      *string `json:"address,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	WhatsApp     *string `json:"whatsapp,omitempty"`
	Email        *string `json:"email,omitempty"`
	OpeningHours *string `json:"openingHours,omitempty"`
	Instagram    *string `json:"instagram,omitempty"`
	BookingsOpen *bool   `json:"bookingsOpen,omitempty"`
}

// Apply copies the non-nil fields onto s.
func (u SalonSettingsUpdate) Apply(s *SalonSettings) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Tagline != nil {
		s.Tagline = *u.Tagline
	}
	if u.Address != nil {
		s.Address = *u.Address
	}
	if u.Phone != nil {
		s.Phone = *u.Phone
	}
	if u.WhatsApp != nil {
		s.WhatsApp = *u.WhatsApp
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.OpeningHours != nil {
		s.OpeningHours = *u.OpeningHours
	}
	if u.Instagram != nil {
		s.Instagram = *u.Instagram
	}
	if u.BookingsOpen != nil {
		s.BookingsOpen = *u.BookingsOpen
	}
}
