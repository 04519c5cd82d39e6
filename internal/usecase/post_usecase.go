package usecase

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"dzdeals/internal/domain/entity"
	"dzdeals/internal/domain/repository"
	"dzdeals/pkg/errors"
	"dzdeals/pkg/logger"
)

const maxPostImages = 3

type PostUseCase struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	uploader FileUploader
}

func NewPostUseCase(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	uploader FileUploader,
) *PostUseCase {
	return &PostUseCase{
		postRepo: postRepo,
		userRepo: userRepo,
		uploader: uploader,
	}
}

type CreatePostInput struct {
	Title        string
	Price        string
	OldPrice     string
	NewPrice     string
	Category     string
	SubCategory  string
	SubCategory2 string
	SubCategory3 string
	Description  string
	Condition    string
	SaleType     string
	PaymentType  string
	Colors       []string
	Sizes        []string
	Promo        bool
}

// ImageUpload is one multipart image waiting for object storage.
type ImageUpload struct {
	Reader      io.Reader
	ContentType string
}

func (uc *PostUseCase) CreatePost(ctx context.Context, userID string, input CreatePostInput, images []ImageUpload) (*entity.Post, error) {
	if userID == "" || input.Title == "" || input.Price == "" {
		return nil, errors.BadRequest("Missing required fields: userId, prix or title", nil)
	}
	if len(images) > maxPostImages {
		return nil, errors.BadRequest("A listing carries at most three images", nil)
	}

	owner, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	picturePaths, err := uc.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &entity.Post{
		UserID:          userID,
		Title:           input.Title,
		Price:           input.Price,
		OldPrice:        input.OldPrice,
		NewPrice:        input.NewPrice,
		Category:        input.Category,
		SubCategory:     input.SubCategory,
		SubCategory2:    input.SubCategory2,
		SubCategory3:    input.SubCategory3,
		Description:     input.Description,
		Condition:       input.Condition,
		SaleType:        input.SaleType,
		PaymentType:     input.PaymentType,
		Colors:          input.Colors,
		Sizes:           input.Sizes,
		Promo:           input.Promo,
		PicturePaths:    picturePaths,
		UserPicturePath: owner.PicturePath,
		ViewsHistory:    []entity.ViewDay{},
		Orders:          []entity.Order{},
		Offers:          []entity.Offer{},
		Ratings:         []entity.Rating{},
		Comments:        []entity.Comment{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// uploadImages pushes all images to object storage concurrently, preserving
// their submission order in the result.
func (uc *PostUseCase) uploadImages(ctx context.Context, images []ImageUpload) ([]string, error) {
	urls := make([]string, len(images))
	if len(images) == 0 {
		return urls, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for i, img := range images {
		i, img := i, img
		g.Go(func() error {
			url, err := uc.uploader.UploadImage(gctx, img.Reader, img.ContentType, "posts")
			if err != nil {
				return errors.Internal("Failed to upload image", err)
			}
			mu.Lock()
			urls[i] = url
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}

// ListPosts returns all listings ordered by descending ranking score; ties
// keep their natural document order.
func (uc *PostUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].RankingScore(now) > posts[j].RankingScore(now)
	})

	return posts, nil
}

func (uc *PostUseCase) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	return uc.postRepo.GetByID(ctx, id)
}

func (uc *PostUseCase) ListUserPosts(ctx context.Context, userID string) ([]*entity.Post, error) {
	if userID == "" {
		return nil, errors.BadRequest("L'ID utilisateur est requis", nil)
	}

	posts, err := uc.postRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, errors.NotFound("Publications de cet utilisateur", nil)
	}
	return posts, nil
}

func (uc *PostUseCase) DeletePost(ctx context.Context, id string) error {
	if _, err := uc.postRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.postRepo.Delete(ctx, id)
}

// Change kinds for order/offer updates carried by UpdatePost.
const (
	ChangeKindNewEntry     = "new-entry"
	ChangeKindStatusUpdate = "status-update"
)

// OrderChange is the tagged union replacing the historical overloaded field:
// either a brand-new order entry or a status transition targeting the
// existing order of a given buyer.
type OrderChange struct {
	Kind    string
	BuyerID string
	Status  string
}

// OfferChange mirrors OrderChange for price offers.
type OfferChange struct {
	Kind          string
	BuyerID       string
	Status        string
	ProposedPrice string
}

type UpdatePostInput struct {
	Title        string
	Price        string
	OldPrice     string
	NewPrice     string
	Category     string
	SubCategory  string
	SubCategory2 string
	SubCategory3 string
	Description  string
	Condition    string
	SaleType     string
	PaymentType  string
	Colors       []string
	Sizes        []string

	// Images replaces the whole picture set when non-empty; there is no
	// per-image merge.
	Images []string

	Order *OrderChange
	Offer *OfferChange
}

func validOrderTransition(status string) bool {
	switch status {
	case entity.OrderStatusShipping, entity.OrderStatusDelivered, entity.OrderStatusCancelled:
		return true
	}
	return false
}

func validOfferTransition(status string) bool {
	switch status {
	case entity.OfferStatusAccepted, entity.OfferStatusRefused:
		return true
	}
	return false
}

// UpdatePost applies a partial edit: only fields present in the request
// overwrite stored values. Order/offer changes are applied inside the same
// document transaction.
func (uc *PostUseCase) UpdatePost(ctx context.Context, id string, input UpdatePostInput) (*entity.Post, error) {
	return uc.postRepo.Mutate(ctx, id, func(post *entity.Post) error {
		if input.Title != "" {
			post.Title = input.Title
		}
		if input.Price != "" {
			post.Price = input.Price
		}
		if input.OldPrice != "" {
			post.OldPrice = input.OldPrice
		}
		if input.NewPrice != "" {
			post.NewPrice = input.NewPrice
		}
		if input.Category != "" {
			post.Category = input.Category
		}
		if input.SubCategory != "" {
			post.SubCategory = input.SubCategory
		}
		if input.SubCategory2 != "" {
			post.SubCategory2 = input.SubCategory2
		}
		if input.SubCategory3 != "" {
			post.SubCategory3 = input.SubCategory3
		}
		if input.Description != "" {
			post.Description = input.Description
		}
		if input.Condition != "" {
			post.Condition = input.Condition
		}
		if input.SaleType != "" {
			post.SaleType = input.SaleType
		}
		if input.PaymentType != "" {
			post.PaymentType = input.PaymentType
		}
		if len(input.Colors) > 0 {
			post.Colors = input.Colors
		}
		if len(input.Sizes) > 0 {
			post.Sizes = input.Sizes
		}
		if len(input.Images) > 0 {
			post.PicturePaths = input.Images
		}

		if input.Order != nil {
			if err := applyOrderChange(post, input.Order); err != nil {
				return err
			}
		}
		if input.Offer != nil {
			if err := applyOfferChange(post, input.Offer); err != nil {
				return err
			}
		}
		return nil
	})
}

func applyOrderChange(post *entity.Post, change *OrderChange) error {
	switch change.Kind {
	case ChangeKindNewEntry:
		if change.BuyerID == "" {
			return errors.BadRequest("Order entry requires a buyer", nil)
		}
		post.Orders = append(post.Orders, entity.Order{
			ID:        uuid.New().String(),
			BuyerID:   change.BuyerID,
			Status:    entity.OrderStatusPending,
			CreatedAt: time.Now(),
		})
		return nil

	case ChangeKindStatusUpdate:
		if !validOrderTransition(change.Status) {
			return errors.BadRequest("Unknown order status: "+change.Status, nil)
		}
		order := post.OrderByBuyer(change.BuyerID)
		if order == nil {
			// A transition without a matching order is ignored on purpose.
			logger.Warn("Order status update skipped: no order from buyer %s on post %s", change.BuyerID, post.ID)
			return nil
		}
		order.Status = change.Status
		return nil
	}
	return errors.BadRequest("Unknown order change kind: "+change.Kind, nil)
}

func applyOfferChange(post *entity.Post, change *OfferChange) error {
	switch change.Kind {
	case ChangeKindNewEntry:
		if change.BuyerID == "" {
			return errors.BadRequest("Offer entry requires a buyer", nil)
		}
		post.Offers = append(post.Offers, entity.Offer{
			ID:            uuid.New().String(),
			BuyerID:       change.BuyerID,
			Status:        entity.OfferStatusPending,
			ProposedPrice: change.ProposedPrice,
			CreatedAt:     time.Now(),
		})
		return nil

	case ChangeKindStatusUpdate:
		if !validOfferTransition(change.Status) {
			return errors.BadRequest("Unknown offer status: "+change.Status, nil)
		}
		offer := post.OfferByBuyer(change.BuyerID)
		if offer == nil {
			logger.Warn("Offer status update skipped: no offer from buyer %s on post %s", change.BuyerID, post.ID)
			return nil
		}
		offer.Status = change.Status
		return nil
	}
	return errors.BadRequest("Unknown offer change kind: "+change.Kind, nil)
}

// AddView counts one view: total counter, today's history entry, and the
// 30-day prune, all in one transactional mutation.
func (uc *PostUseCase) AddView(ctx context.Context, id string) (*entity.Post, error) {
	return uc.postRepo.Mutate(ctx, id, func(post *entity.Post) error {
		post.RecordView(time.Now())
		return nil
	})
}

func (uc *PostUseCase) RatePost(ctx context.Context, postID, raterID string, value float64) (*RatingSummary, error) {
	if raterID == "" {
		return nil, errors.BadRequest("userId is required", nil)
	}

	post, err := uc.postRepo.Mutate(ctx, postID, func(p *entity.Post) error {
		p.Ratings = entity.ApplyRating(p.Ratings, entity.Rating{UserID: raterID, Value: value})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &RatingSummary{
		Ratings: post.Ratings,
		Average: entity.AverageRating(post.Ratings),
	}, nil
}

func (uc *PostUseCase) GetPostRating(ctx context.Context, postID, raterID string) (*RatingSummary, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &RatingSummary{
		Ratings:    post.Ratings,
		UserRating: entity.RatingFor(post.Ratings, raterID),
		Average:    entity.AverageRating(post.Ratings),
	}, nil
}

func (uc *PostUseCase) CommentOnPost(ctx context.Context, postID, authorID, text string) ([]entity.Comment, error) {
	if authorID == "" || text == "" {
		return nil, errors.BadRequest("userId and comment are required", nil)
	}

	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, errors.NotFound("Auteur", err)
	}

	post, err := uc.postRepo.Mutate(ctx, postID, func(p *entity.Post) error {
		p.Comments = append(p.Comments, entity.Comment{
			ID:       uuid.New().String(),
			UserID:   authorID,
			UserName: author.FullName,
			Text:     text,
			Date:     time.Now().Format("2006-01-02"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post.Comments, nil
}

func (uc *PostUseCase) GetPostComments(ctx context.Context, postID string) ([]entity.Comment, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

func (uc *PostUseCase) DeletePostComment(ctx context.Context, postID, commentID string) ([]entity.Comment, error) {
	post, err := uc.postRepo.Mutate(ctx, postID, func(p *entity.Post) error {
		kept, removed := entity.RemoveComment(p.Comments, commentID)
		if !removed {
			return errors.NotFound("Commentaire", nil)
		}
		p.Comments = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// BuyerOrderGroup is the buyer-side view of the orders placed on one
// listing: repeated attempts collapse into a single record with a count.
type BuyerOrderGroup struct {
	PostID      string    `json:"postId"`
	Title       string    `json:"title"`
	Price       string    `json:"prix"`
	SellerID    string    `json:"sellerId"`
	Picture     string    `json:"picture,omitempty"`
	Status      string    `json:"status"`
	Attempts    int       `json:"attempts"`
	LastOrderAt time.Time `json:"lastOrderAt"`
}

func (uc *PostUseCase) GetBuyerOrders(ctx context.Context, buyerID string) ([]BuyerOrderGroup, error) {
	if buyerID == "" {
		return nil, errors.BadRequest("L'ID utilisateur est requis", nil)
	}

	posts, err := uc.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var groups []BuyerOrderGroup
	for _, post := range posts {
		var group *BuyerOrderGroup
		for _, order := range post.Orders {
			if order.BuyerID != buyerID {
				continue
			}
			if group == nil {
				picture := ""
				if len(post.PicturePaths) > 0 {
					picture = post.PicturePaths[0]
				}
				groups = append(groups, BuyerOrderGroup{
					PostID:   post.ID,
					Title:    post.Title,
					Price:    post.Price,
					SellerID: post.UserID,
					Picture:  picture,
				})
				group = &groups[len(groups)-1]
			}
			group.Attempts++
			if !order.CreatedAt.Before(group.LastOrderAt) {
				group.LastOrderAt = order.CreatedAt
				group.Status = order.Status
			}
		}
	}

	return groups, nil
}

// SellerOrderView is the seller-side view: one record per listing with its
// full order list attached.
type SellerOrderView struct {
	PostID  string         `json:"postId"`
	Title   string         `json:"title"`
	Price   string         `json:"prix"`
	Picture string         `json:"picture,omitempty"`
	Orders  []entity.Order `json:"commande"`
}

func (uc *PostUseCase) GetSellerOrders(ctx context.Context, sellerID string) ([]SellerOrderView, error) {
	if sellerID == "" {
		return nil, errors.BadRequest("L'ID utilisateur est requis", nil)
	}

	posts, err := uc.postRepo.ListByUserID(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	var views []SellerOrderView
	for _, post := range posts {
		if len(post.Orders) == 0 {
			continue
		}
		picture := ""
		if len(post.PicturePaths) > 0 {
			picture = post.PicturePaths[0]
		}
		views = append(views, SellerOrderView{
			PostID:  post.ID,
			Title:   post.Title,
			Price:   post.Price,
			Picture: picture,
			Orders:  post.Orders,
		})
	}

	return views, nil
}
