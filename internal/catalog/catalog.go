// Package catalog holds the static, read-only property corpus.
package catalog

import (
	"sort"

	"karilike/internal/domain"
)

func rating(f float64) *float64 { return &f }

var properties = []domain.Property{
	{
		ID:          "1",
		Title:       "Sunny Studio near University",
		Price:       3500,
		Type:        domain.CategoryStudio,
		Location:    "Madinat Al Irfane, Rabat",
		Bedrooms:    1,
		Bathrooms:   1,
		Sqft:        450,
		Description: "Perfect for students! A bright, fully furnished studio apartment just a 5-minute walk from campus. Includes high-speed internet and study desk.",
		Amenities:   []string{"Furnished", "WiFi", "Near Transit", "Laundry in Building"},
		Images: []string{
			"https://picsum.photos/800/600?random=1",
			"https://picsum.photos/800/600?random=101",
			"https://picsum.photos/800/600?random=102",
		},
		OwnerName:        "Sarah Jenkins",
		OwnerContact:     "sarah.j@email.com",
		OwnerRating:      rating(4.8),
		OwnerReviewCount: 24,
		IsFeatured:       true,
	},
	{
		ID:          "2",
		Title:       "Modern 2BHK near Casanearshore",
		Price:       6500,
		Type:        domain.CategoryApartment,
		Location:    "Sidi Maarouf, Casablanca",
		Bedrooms:    2,
		Bathrooms:   2,
		Sqft:        1100,
		Description: "Luxury living for professionals. This modern apartment features a gym, pool access, and is located right in the heart of the tech corridor.",
		Amenities:   []string{"Gym", "Pool", "Parking", "AC", "Dishwasher"},
		Images: []string{
			"https://picsum.photos/800/600?random=2",
			"https://picsum.photos/800/600?random=201",
		},
		OwnerName:        "David Chen",
		OwnerContact:     "david.c@email.com",
		OwnerRating:      rating(4.5),
		OwnerReviewCount: 12,
		IsFeatured:       true,
	},
	{
		ID:               "3",
		Title:            "Cozy Shared Room in Medina",
		Price:            1500,
		Type:             domain.CategoryRoom,
		Location:         "Medina, Fez",
		Bedrooms:         1,
		Bathrooms:        1,
		Sqft:             200,
		Description:      "Affordable shared living in a beautiful renovated heritage house. Huge backyard and shared kitchen. Great community vibe.",
		Amenities:        []string{"Garden", "Shared Kitchen", "Pets Allowed", "Utilities Included"},
		Images:           []string{"https://picsum.photos/800/600?random=3"},
		OwnerName:        "Martha Stewart",
		OwnerContact:     "martha.s@email.com",
		OwnerRating:      rating(4.9),
		OwnerReviewCount: 56,
	},
	{
		ID:          "4",
		Title:       "Spacious Family House",
		Price:       12000,
		Type:        domain.CategoryHouse,
		Location:    "Hay Riad, Rabat",
		Bedrooms:    3,
		Bathrooms:   2.5,
		Sqft:        2200,
		Description: "A wonderful home for a family. Quiet neighborhood, excellent schools nearby, and a private garage. Freshly painted.",
		Amenities:   []string{"Garage", "Private Garden", "Fireplace", "Pet Friendly"},
		Images: []string{
			"https://picsum.photos/800/600?random=4",
			"https://picsum.photos/800/600?random=401",
			"https://picsum.photos/800/600?random=402",
			"https://picsum.photos/800/600?random=403",
		},
		OwnerName:        "Robert Wilson",
		OwnerContact:     "rob.w@email.com",
		OwnerRating:      rating(4.2),
		OwnerReviewCount: 8,
	},
	{
		ID:               "5",
		Title:            "Artistic Loft",
		Price:            8000,
		Type:             domain.CategoryApartment,
		Location:         "Gueliz, Marrakech",
		Bedrooms:         1,
		Bathrooms:        1,
		Sqft:             950,
		Description:      "High ceilings, exposed brick, and huge windows. This loft is perfect for artists or creative professionals working from home.",
		Amenities:        []string{"Elevator", "Security", "Smart Home", "Balcony"},
		Images:           []string{"https://picsum.photos/800/600?random=5"},
		OwnerName:        "Elena Rodriguez",
		OwnerContact:     "elena.r@email.com",
		OwnerRating:      rating(5.0),
		OwnerReviewCount: 5,
	},
	{
		ID:               "6",
		Title:            "Budget Friendly Student Room",
		Price:            1200,
		Type:             domain.CategoryRoom,
		Location:         "Martil, Tetouan",
		Bedrooms:         1,
		Bathrooms:        1,
		Sqft:             150,
		Description:      "Basic but comfortable room in a shared student house. Includes weekly cleaning of common areas.",
		Amenities:        []string{"WiFi", "Cleaning Service", "Bicycle Parking"},
		Images:           []string{"https://picsum.photos/800/600?random=6"},
		OwnerName:        "Tom Baker",
		OwnerContact:     "tom.b@email.com",
		OwnerRating:      rating(3.8),
		OwnerReviewCount: 15,
	},
}

// Catalog is a read-only view over a fixed property list.
type Catalog struct{ items []domain.Property }

// Default returns the built-in sample catalog.
func Default() *Catalog { return New(properties) }

// New copies items so later mutation by the caller cannot reach the catalog.
func New(items []domain.Property) *Catalog {
	return &Catalog{items: cloneAll(items)}
}

// All returns a copy of every property in catalog order.
func (c *Catalog) All() []domain.Property { return cloneAll(c.items) }

func (c *Catalog) ByID(id string) (domain.Property, error) {
	for _, p := range c.items {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Property{}, domain.ErrNotFound
}

func (c *Catalog) ByCategory(cat domain.Category) []domain.Property {
	out := make([]domain.Property, 0, len(c.items))
	for _, p := range c.items {
		if p.Type == cat {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Cities lists the unique derived cities, sorted.
func (c *Catalog) Cities() []string {
	seen := make(map[string]struct{}, len(c.items))
	var out []string
	for _, p := range c.items {
		city := p.City()
		if city == "" {
			continue
		}
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		out = append(out, city)
	}
	sort.Strings(out)
	return out
}

func cloneAll(in []domain.Property) []domain.Property {
	out := make([]domain.Property, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
