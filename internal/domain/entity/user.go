package entity

import (
	"time"
)

// Rating is a single star rating left by a user. A rater has at most one
// entry per rated document; the latest submission overwrites the previous one.
type Rating struct {
	UserID string  `json:"userId" firestore:"userId"`
	Value  float64 `json:"rating" firestore:"rating"`
}

// Comment is an append-only comment entry. The generated ID allows point
// deletion later.
type Comment struct {
	ID       string `json:"id" firestore:"id"`
	UserID   string `json:"userId" firestore:"userId"`
	UserName string `json:"userName,omitempty" firestore:"userName,omitempty"`
	Text     string `json:"comment" firestore:"comment"`
	Date     string `json:"date" firestore:"date"`
}

type User struct {
	ID          string `json:"id" firestore:"id"`
	FullName    string `json:"nomComplet" firestore:"nomComplet"`
	Email       string `json:"email" firestore:"email"`
	Password    string `json:"-" firestore:"password"`
	Phone       string `json:"telephone,omitempty" firestore:"telephone,omitempty"`
	Address     string `json:"adresse,omitempty" firestore:"adresse,omitempty"`
	Bio         string `json:"infos,omitempty" firestore:"infos,omitempty"`
	Profession  string `json:"profession,omitempty" firestore:"profession,omitempty"`
	PicturePath string `json:"picture,omitempty" firestore:"picture,omitempty"`

	Followers []string  `json:"followers" firestore:"followers"`
	Ratings   []Rating  `json:"rating" firestore:"rating"`
	Comments  []Comment `json:"commentaire" firestore:"commentaire"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// AverageRating computes the mean of a rating list, 0 when empty.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var total float64
	for _, r := range ratings {
		total += r.Value
	}
	return total / float64(len(ratings))
}

// ApplyRating enforces last-write-wins per rater: any previous rating from
// the same user is removed before the new one is appended.
func ApplyRating(ratings []Rating, rating Rating) []Rating {
	kept := make([]Rating, 0, len(ratings)+1)
	for _, r := range ratings {
		if r.UserID != rating.UserID {
			kept = append(kept, r)
		}
	}
	return append(kept, rating)
}

// RatingFor returns the rating left by a given user, nil when absent.
func RatingFor(ratings []Rating, userID string) *Rating {
	for i := range ratings {
		if ratings[i].UserID == userID {
			return &ratings[i]
		}
	}
	return nil
}

// RemoveComment deletes the comment with the given ID. The second return
// value reports whether anything was removed.
func RemoveComment(comments []Comment, commentID string) ([]Comment, bool) {
	for i, c := range comments {
		if c.ID == commentID {
			return append(comments[:i:i], comments[i+1:]...), true
		}
	}
	return comments, false
}
