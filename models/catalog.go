package models

// Service is one bookable catalog entry.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
	Image       string  `json:"image,omitempty"`
}

// Package bundles catalog services at a package price.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ServiceIDs  []string `json:"serviceIds"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Popular     bool     `json:"popular,omitempty"`
}

// CustomServiceID marks bookings priced from an AI estimate.
const CustomServiceID = "custom"

var Catalog = []Service{
	{ID: "classic-haircut", Name: "Classic Haircut", Category: "Hair", Price: 499, Duration: "45 mins", Description: "Consultation, wash, precision cut and blow-dry."},
	{ID: "beard-sculpt", Name: "Beard Sculpting", Category: "Grooming", Price: 299, Duration: "30 mins", Description: "Shape, line-up and hot towel finish."},
	{ID: "hair-spa", Name: "Hair Spa", Category: "Hair", Price: 1199, Duration: "60 mins", Description: "Deep conditioning treatment with scalp massage."},
	{ID: "global-color", Name: "Global Hair Color", Category: "Color", Price: 2499, Duration: "120 mins", Description: "Full head colour with ammonia-free products."},
	{ID: "balayage", Name: "Balayage", Category: "Color", Price: 4499, Duration: "180 mins", Description: "Hand-painted highlights for a natural gradient."},
	{ID: "keratin", Name: "Keratin Treatment", Category: "Treatment", Price: 3999, Duration: "150 mins", Description: "Smoothing treatment that tames frizz for months."},
	{ID: "classic-facial", Name: "Classic Facial", Category: "Skin", Price: 999, Duration: "60 mins", Description: "Cleanse, exfoliate, massage and mask."},
	{ID: "bridal-makeup", Name: "Bridal Makeup", Category: "Makeup", Price: 14999, Duration: "180 mins", Description: "HD bridal makeup with hairstyling and draping."},
	{ID: "manicure", Name: "Spa Manicure", Category: "Nails", Price: 599, Duration: "40 mins", Description: "Nail shaping, cuticle care and polish."},
	{ID: "pedicure", Name: "Spa Pedicure", Category: "Nails", Price: 799, Duration: "50 mins", Description: "Soak, scrub, massage and polish."},
}

var Packages = []Package{
	{ID: "groom-essentials", Name: "Groom Essentials", ServiceIDs: []string{"classic-haircut", "beard-sculpt", "classic-facial"}, Price: 1599, Description: "Cut, beard and facial in one sitting."},
	{ID: "pamper-day", Name: "Pamper Day", ServiceIDs: []string{"hair-spa", "manicure", "pedicure"}, Price: 2199, Description: "Hair spa with hands and feet care.", Popular: true},
	{ID: "bridal-glow", Name: "Bridal Glow", ServiceIDs: []string{"bridal-makeup", "classic-facial", "manicure", "pedicure"}, Price: 16499, Description: "Everything for the big day."},
}

// FindService returns the catalog entry with the given id.
func FindService(id string) (Service, bool) {
	for _, s := range Catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
