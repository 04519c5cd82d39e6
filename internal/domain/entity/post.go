package entity

import (
	"time"
)

// Order statuses. "En attente" is the default for a freshly placed order.
const (
	OrderStatusPending   = "En attente"
	OrderStatusShipping  = "En cours de livraison"
	OrderStatusDelivered = "Livré"
	OrderStatusCancelled = "Livraison annulée"
)

// Offer statuses.
const (
	OfferStatusPending  = "En attente"
	OfferStatusAccepted = "Accepté"
	OfferStatusRefused  = "Refusé"
)

// ViewsHistoryDays is the rolling window kept in Post.ViewsHistory.
const ViewsHistoryDays = 30

// ViewDayLayout is the calendar-date key used for view history entries.
const ViewDayLayout = "2006-01-02"

// Order is a purchase attempt ("commande") on a listing.
type Order struct {
	ID        string    `json:"id" firestore:"id"`
	BuyerID   string    `json:"userId" firestore:"userId"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// Offer is a price proposal ("offre") on a listing.
type Offer struct {
	ID            string    `json:"id" firestore:"id"`
	BuyerID       string    `json:"userId" firestore:"userId"`
	Status        string    `json:"status" firestore:"status"`
	ProposedPrice string    `json:"prixPropose" firestore:"prixPropose"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}

// ViewDay is one calendar day of view counting.
type ViewDay struct {
	Date  string `json:"date" firestore:"date"`
	Count int    `json:"count" firestore:"count"`
}

type Post struct {
	ID       string `json:"id" firestore:"id"`
	UserID   string `json:"userId" firestore:"userId"`
	Title    string `json:"title" firestore:"title"`
	Price    string `json:"prix" firestore:"prix"`
	OldPrice string `json:"ancienPrix,omitempty" firestore:"ancienPrix,omitempty"`
	NewPrice string `json:"nouveauPrix,omitempty" firestore:"nouveauPrix,omitempty"`

	Category     string `json:"categorie,omitempty" firestore:"categorie,omitempty"`
	SubCategory  string `json:"sousCategorie,omitempty" firestore:"sousCategorie,omitempty"`
	SubCategory2 string `json:"sousCategorie2,omitempty" firestore:"sousCategorie2,omitempty"`
	SubCategory3 string `json:"sousCategorie3,omitempty" firestore:"sousCategorie3,omitempty"`

	Description string   `json:"description,omitempty" firestore:"description,omitempty"`
	Condition   string   `json:"etat,omitempty" firestore:"etat,omitempty"`
	SaleType    string   `json:"typeVente,omitempty" firestore:"typeVente,omitempty"`
	PaymentType string   `json:"typePaiement,omitempty" firestore:"typePaiement,omitempty"`
	Colors      []string `json:"couleurs,omitempty" firestore:"couleurs,omitempty"`
	Sizes       []string `json:"tailles,omitempty" firestore:"tailles,omitempty"`
	Promo       bool     `json:"promo,omitempty" firestore:"promo,omitempty"`

	PicturePaths    []string `json:"picturePaths" firestore:"picturePaths"`
	UserPicturePath string   `json:"userPicturePath,omitempty" firestore:"userPicturePath,omitempty"`

	Views        int       `json:"views" firestore:"views"`
	ViewsHistory []ViewDay `json:"viewsHistory" firestore:"viewsHistory"`

	Orders []Order `json:"commande" firestore:"commande"`
	Offers []Offer `json:"offre" firestore:"offre"`

	Ratings  []Rating  `json:"rating" firestore:"rating"`
	Comments []Comment `json:"commentaire" firestore:"commentaire"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// RankingScore blends freshness and popularity into a single total order:
// newer listings decay linearly with age while each view is worth a fixed
// boost. Higher is better.
func (p *Post) RankingScore(now time.Time) float64 {
	ageMillis := float64(now.Sub(p.CreatedAt).Milliseconds())
	return -0.001*ageMillis + 100*float64(p.Views)
}

// RecordView increments the total view counter and upserts the entry for the
// given calendar day, then drops history entries older than the rolling
// window ending on that day.
func (p *Post) RecordView(day time.Time) {
	p.Views++

	key := day.Format(ViewDayLayout)
	found := false
	for i := range p.ViewsHistory {
		if p.ViewsHistory[i].Date == key {
			p.ViewsHistory[i].Count++
			found = true
			break
		}
	}
	if !found {
		p.ViewsHistory = append(p.ViewsHistory, ViewDay{Date: key, Count: 1})
	}

	cutoff := day.AddDate(0, 0, -ViewsHistoryDays).Format(ViewDayLayout)
	kept := p.ViewsHistory[:0]
	for _, entry := range p.ViewsHistory {
		if entry.Date >= cutoff {
			kept = append(kept, entry)
		}
	}
	p.ViewsHistory = kept
}

// OrderByBuyer returns the order placed by the given buyer, nil when absent.
// With repeated attempts from one buyer the first match wins, mirroring the
// status-update target resolution.
func (p *Post) OrderByBuyer(buyerID string) *Order {
	for i := range p.Orders {
		if p.Orders[i].BuyerID == buyerID {
			return &p.Orders[i]
		}
	}
	return nil
}

// OfferByBuyer returns the offer made by the given buyer, nil when absent.
func (p *Post) OfferByBuyer(buyerID string) *Offer {
	for i := range p.Offers {
		if p.Offers[i].BuyerID == buyerID {
			return &p.Offers[i]
		}
	}
	return nil
}
