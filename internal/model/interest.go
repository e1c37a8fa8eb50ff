package model

// MovieInterestsIndex is the global secondary index on the Interests table
// keyed by movieId. It answers "who is interested in movie X" without
// scanning the whole table.
const MovieInterestsIndex = "MovieInterestsIndex"

// Interest records that one user wants one movie. The table key is
// (userId, movieId), so a user can hold at most one interest per movie.
type Interest struct {
	UserID    string `dynamodbav:"userId" json:"userId"`
	MovieID   string `dynamodbav:"movieId" json:"movieId"`
	CreatedAt int64  `dynamodbav:"createdAt" json:"createdAt"`
}
