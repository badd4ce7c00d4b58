// models/user.go
package models

import "time"

const (
	DefaultLoyaltyTier = "Silver"
	DefaultLanguage    = "en"
)

// SupportedLanguages lists the accepted UserSettings.Language values.
var SupportedLanguages = []string{"en", "hi", "ta", "te", "kn", "mr"}

// User is a customer account. ID is the identity subject and document key.
type User struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email" json:"email"`
	Phone        string       `bson:"phone" json:"phone"`
	PasswordHash string       `bson:"passwordHash" json:"-"`
	TokenHash    string       `bson:"tokenHash,omitempty" json:"-"`
	LoyaltyTier  string       `bson:"loyaltyTier" json:"loyaltyTier"`
	Credits      float64      `bson:"credits" json:"credits"`
	Avatar       string       `bson:"avatar" json:"avatar"`
	Gender       string       `bson:"gender,omitempty" json:"gender,omitempty"`
	Birthday     string       `bson:"birthday,omitempty" json:"birthday,omitempty"`
	Settings     UserSettings `bson:"settings" json:"settings"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

type UserSettings struct {
	Notifications   bool   `bson:"notifications" json:"notifications"`
	WhatsAppUpdates bool   `bson:"whatsappUpdates" json:"whatsappUpdates"`
	Language        string `bson:"language" json:"language"`
}

// DefaultUserSettings are applied at sign-up.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Notifications:   true,
		WhatsAppUpdates: true,
		Language:        DefaultLanguage,
	}
}

// ProfileUpdate carries the editable profile fields. Nil fields are left alone.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Birthday *string `json:"birthday,omitempty"`
}

// SettingsUpdate carries the editable settings fields. Nil fields are left alone.
type SettingsUpdate struct {
	Notifications   *bool   `json:"notifications,omitempty"`
	WhatsAppUpdates *bool   `json:"whatsappUpdates,omitempty"`
	Language        *string `json:"language,omitempty"`
}
