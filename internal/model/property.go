package model

// Property is a row of the properties table.
type Property struct {
	ID                int64  `db:"id" json:"id"`
	OwnerID           int64  `db:"owner_id" json:"owner_id"`
	Title             string `db:"title" json:"title"`
	Description       string `db:"description" json:"description"`
	ThumbnailPhotoURL string `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight      int64  `db:"cost_per_night" json:"cost_per_night"`
	ParkingSpaces     int32  `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms int32  `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int32  `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	Country           string `db:"country" json:"country"`
	Street            string `db:"street" json:"street"`
	City              string `db:"city" json:"city"`
	Province          string `db:"province" json:"province"`
	PostCode          string `db:"post_code" json:"post_code"`
	Active            bool   `db:"active" json:"active"`
}

// PropertyListing is a property annotated with its average review rating.
//
// AverageRating is nil for a property without reviews, which only shows up
// when search is configured to keep unreviewed properties.
type PropertyListing struct {
	Property
	AverageRating *float64 `db:"average_rating" json:"average_rating"`
}

// NewProperty is the input of an insert into properties.
//
// CostPerNight is in cents.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int32  `json:"parking_spaces"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
}
