package models

import "time"

// HeroImage is a homepage banner slide.
type HeroImage struct {
	ID        string    `bson:"id" json:"id"`
	URL       string    `bson:"url" json:"url"`
	PublicID  string    `bson:"publicId,omitempty" json:"publicId,omitempty"`
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle  string    `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Review is a customer testimonial curated by the admin.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	Avatar    string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// GalleryItem is one work sample in the gallery.
type GalleryItem struct {
	ID        string    `bson:"id" json:"id"`
	URL       string    `bson:"url" json:"url"`
	PublicID  string    `bson:"publicId,omitempty" json:"publicId,omitempty"`
	Caption   string    `bson:"caption,omitempty" json:"caption,omitempty"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ContactSubmission is a message left through the contact form.
type ContactSubmission struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Entity is satisfied by every content record stored by id.
type Entity interface {
	EntityID() string
	Created() time.Time
}

func (h HeroImage) EntityID() string {
	return h.ID
}

func (h HeroImage) Created() time.Time {
	return h.CreatedAt
}

func (r Review) EntityID() string {
	return r.ID
}

func (r Review) Created() time.Time {
	return r.CreatedAt
}

func (g GalleryItem) EntityID() string {
	return g.ID
}

func (g GalleryItem) Created() time.Time {
	return g.CreatedAt
}

func (c ContactSubmission) EntityID() string {
	return c.ID
}

func (c ContactSubmission) Created() time.Time {
	return c.CreatedAt
}
