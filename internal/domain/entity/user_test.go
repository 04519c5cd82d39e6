package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyRatingLastWriteWins(t *testing.T) {
	var ratings []Rating

	ratings = ApplyRating(ratings, Rating{UserID: "alice", Value: 2})
	ratings = ApplyRating(ratings, Rating{UserID: "bob", Value: 5})
	ratings = ApplyRating(ratings, Rating{UserID: "alice", Value: 4})

	assert.Len(t, ratings, 2)
	if r := RatingFor(ratings, "alice"); assert.NotNil(t, r) {
		assert.Equal(t, 4.0, r.Value)
	}
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))

	ratings := []Rating{
		{UserID: "a", Value: 3},
		{UserID: "b", Value: 5},
	}
	assert.Equal(t, 4.0, AverageRating(ratings))
}

func TestRemoveComment(t *testing.T) {
	comments := []Comment{
		{ID: "c1", Text: "premier"},
		{ID: "c2", Text: "deuxième"},
	}

	kept, removed := RemoveComment(comments, "c1")
	assert.True(t, removed)
	if assert.Len(t, kept, 1) {
		assert.Equal(t, "c2", kept[0].ID)
	}

	same, removed := RemoveComment(kept, "missing")
	assert.False(t, removed)
	assert.Len(t, same, 1)
}
