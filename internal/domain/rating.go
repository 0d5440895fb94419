package domain

// Aggregate is the running mean of star ratings for one owner.
type Aggregate struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// Apply folds one 1..5 star rating into the aggregate.
func (a Aggregate) Apply(stars int) (Aggregate, error) {
	if stars < 1 || stars > 5 {
		return a, ErrInvalidRating
	}
	if a.Count <= 0 {
		return Aggregate{Avg: float64(stars), Count: 1}, nil
	}
	n := float64(a.Count)
	return Aggregate{
		Avg:   (a.Avg*n + float64(stars)) / (n + 1),
		Count: a.Count + 1,
	}, nil
}

// AggregateOf reads the optional rating fields of a property.
func AggregateOf(p Property) Aggregate {
	if p.OwnerRating == nil {
		return Aggregate{}
	}
	return Aggregate{Avg: *p.OwnerRating, Count: p.OwnerReviewCount}
}
