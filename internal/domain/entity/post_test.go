package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRankingScoreRecencyBreaksViewTies(t *testing.T) {
	now := time.Now()

	older := &Post{Views: 10, CreatedAt: now.Add(-48 * time.Hour)}
	newer := &Post{Views: 10, CreatedAt: now.Add(-1 * time.Hour)}

	assert.Greater(t, newer.RankingScore(now), older.RankingScore(now))
}

func TestRankingScoreViewsBoost(t *testing.T) {
	now := time.Now()

	quiet := &Post{Views: 0, CreatedAt: now}
	popular := &Post{Views: 500, CreatedAt: now}

	assert.Greater(t, popular.RankingScore(now), quiet.RankingScore(now))
}

func TestRecordViewSameDayAccumulates(t *testing.T) {
	post := &Post{}
	day := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		post.RecordView(day)
	}

	assert.Equal(t, 5, post.Views)
	if assert.Len(t, post.ViewsHistory, 1) {
		assert.Equal(t, "2026-03-10", post.ViewsHistory[0].Date)
		assert.Equal(t, 5, post.ViewsHistory[0].Count)
	}
}

func TestRecordViewPrunesOldHistory(t *testing.T) {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	post := &Post{
		Views: 3,
		ViewsHistory: []ViewDay{
			{Date: day.AddDate(0, 0, -40).Format(ViewDayLayout), Count: 1},
			{Date: day.AddDate(0, 0, -10).Format(ViewDayLayout), Count: 2},
		},
	}

	post.RecordView(day)

	assert.Equal(t, 4, post.Views)
	if assert.Len(t, post.ViewsHistory, 2) {
		for _, entry := range post.ViewsHistory {
			assert.GreaterOrEqual(t, entry.Date, day.AddDate(0, 0, -ViewsHistoryDays).Format(ViewDayLayout))
		}
	}
}

func TestOrderByBuyer(t *testing.T) {
	post := &Post{
		Orders: []Order{
			{ID: "o1", BuyerID: "alice", Status: OrderStatusPending},
			{ID: "o2", BuyerID: "bob", Status: OrderStatusPending},
		},
	}

	order := post.OrderByBuyer("bob")
	if assert.NotNil(t, order) {
		assert.Equal(t, "o2", order.ID)
	}

	order.Status = OrderStatusDelivered
	assert.Equal(t, OrderStatusDelivered, post.Orders[1].Status)

	assert.Nil(t, post.OrderByBuyer("charlie"))
}

func TestOfferByBuyer(t *testing.T) {
	post := &Post{
		Offers: []Offer{
			{ID: "f1", BuyerID: "alice", ProposedPrice: "4500"},
		},
	}

	offer := post.OfferByBuyer("alice")
	if assert.NotNil(t, offer) {
		assert.Equal(t, "4500", offer.ProposedPrice)
	}
	assert.Nil(t, post.OfferByBuyer("bob"))
}
