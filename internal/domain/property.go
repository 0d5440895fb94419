package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryApartment Category = "Apartment"
	CategoryHouse     Category = "House"
	CategoryRoom      Category = "Shared Room"
	CategoryStudio    Category = "Studio"
)

var Categories = []Category{CategoryApartment, CategoryHouse, CategoryRoom, CategoryStudio}

func (c Category) Label() string { return string(c) }

// ParseCategory matches the display label case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type Property struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Price            float64  `json:"price"`
	Type             Category `json:"type"`
	Location         string   `json:"location"` // "district, city"
	Bedrooms         int      `json:"bedrooms"`
	Bathrooms        float64  `json:"bathrooms"`
	Sqft             int      `json:"sqft"`
	Description      string   `json:"description"`
	Amenities        []string `json:"amenities"`
	Images           []string `json:"images"`
	OwnerName        string   `json:"ownerName"`
	OwnerContact     string   `json:"ownerContact"`
	OwnerID          string   `json:"ownerId,omitempty"`
	OwnerRating      *float64 `json:"ownerRating,omitempty"`
	OwnerReviewCount int      `json:"ownerReviewCount,omitempty"`
	IsFeatured       bool     `json:"isFeatured,omitempty"`
}

// City is the trailing comma-separated segment of Location.
func (p Property) City() string {
	return CityOf(p.Location)
}

func CityOf(location string) string {
	if i := strings.LastIndexByte(location, ','); i >= 0 {
		return strings.TrimSpace(location[i+1:])
	}
	return strings.TrimSpace(location)
}

// OwnerKey identifies the owner a rating is attached to.
func (p Property) OwnerKey() string {
	if p.OwnerID != "" {
		return p.OwnerID
	}
	return p.OwnerContact
}

// Clone deep-copies the slices and rating pointer.
func (p Property) Clone() Property {
	out := p
	out.Amenities = append([]string(nil), p.Amenities...)
	out.Images = append([]string(nil), p.Images...)
	if p.OwnerRating != nil {
		r := *p.OwnerRating
		out.OwnerRating = &r
	}
	return out
}

// ListingIntent is the owner's choice on the posting form.
type ListingIntent string

const (
	IntentRent  ListingIntent = "Rent"
	IntentLease ListingIntent = "Lease"
)

// Submission is a listing handed over for review. It is never merged back
// into the catalog.
type Submission struct {
	Property
	Intent ListingIntent `json:"listingType"`
	// Category is carried as typed on the form and is not checked against
	// the Category enum.
	Category string `json:"category"`
}
