package model

// Movie statuses. A movie always carries exactly one of these two values;
// no other status string is ever written to the table.
const (
	StatusWishlist   = "wishlist"
	StatusDownloaded = "downloaded"
)

// Movie represents a tracked download item persisted in the Movies table.
// MovieID is the partition key and is generated once at creation.
// Only Status and UpdatedAt are mutable after creation.
//
// Fields:
//
//	MovieID         – UUID partition key.
//	Title           – trimmed, non-empty title supplied by the creator.
//	Status          – wishlist or downloaded.
//	CreatedBy       – user id (token subject) of the creator.
//	CreatedAt       – unix seconds, set once at creation.
//	UpdatedAt       – unix seconds, bumped on status changes.
//	InterestedUsers – user ids attached at read time; never persisted.
type Movie struct {
	MovieID         string   `dynamodbav:"movieId" json:"movieId"`
	Title           string   `dynamodbav:"title" json:"title"`
	Status          string   `dynamodbav:"status" json:"status"`
	CreatedBy       string   `dynamodbav:"createdBy" json:"createdBy"`
	CreatedAt       int64    `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt       int64    `dynamodbav:"updatedAt" json:"updatedAt"`
	InterestedUsers []string `dynamodbav:"-" json:"interestedUsers,omitempty"`
}

// ValidStatus reports whether s is one of the two persisted statuses.
func ValidStatus(s string) bool {
	return s == StatusWishlist || s == StatusDownloaded
}
