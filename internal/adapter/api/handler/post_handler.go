package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"dzdeals/internal/usecase"
	"dzdeals/pkg/errors"
	"dzdeals/pkg/response"
)

type PostHandler struct {
	postUseCase *usecase.PostUseCase
}

func NewPostHandler(postUseCase *usecase.PostUseCase) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
	}
}

// CreatePost accepts a multipart form: listing fields plus up to three
// images under "pictures".
func (h *PostHandler) CreatePost(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("uid").(string)

	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid multipart form", err))
	}

	var images []usecase.ImageUpload
	var closers []func()
	defer func() {
		for _, close := range closers {
			close()
		}
	}()
	for _, fileHeader := range form.File["pictures"] {
		src, err := fileHeader.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Failed to read uploaded file", err))
		}
		closers = append(closers, func() { _ = src.Close() })
		images = append(images, usecase.ImageUpload{
			Reader:      src,
			ContentType: fileHeader.Header.Get("Content-Type"),
		})
	}

	promo, _ := strconv.ParseBool(c.FormValue("promo"))

	post, err := h.postUseCase.CreatePost(ctx, userID, usecase.CreatePostInput{
		Title:        c.FormValue("title"),
		Price:        c.FormValue("prix"),
		OldPrice:     c.FormValue("ancienPrix"),
		NewPrice:     c.FormValue("nouveauPrix"),
		Category:     c.FormValue("categorie"),
		SubCategory:  c.FormValue("sousCategorie"),
		SubCategory2: c.FormValue("sousCategorie2"),
		SubCategory3: c.FormValue("sousCategorie3"),
		Description:  c.FormValue("description"),
		Condition:    c.FormValue("etat"),
		SaleType:     c.FormValue("typeVente"),
		PaymentType:  c.FormValue("typePaiement"),
		Colors:       form.Value["couleurs"],
		Sizes:        form.Value["tailles"],
		Promo:        promo,
	}, images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postUseCase.ListPosts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posts)
}

func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postUseCase.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *PostHandler) ListUserPosts(c echo.Context) error {
	posts, err := h.postUseCase.ListUserPosts(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posts)
}

type orderChangeRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=new-entry status-update"`
	BuyerID string `json:"userId"`
	Status  string `json:"status"`
}

type offerChangeRequest struct {
	Kind          string `json:"kind" validate:"required,oneof=new-entry status-update"`
	BuyerID       string `json:"userId"`
	Status        string `json:"status"`
	ProposedPrice string `json:"prixPropose"`
}

type updatePostRequest struct {
	Title        string   `json:"title"`
	Price        string   `json:"prix"`
	OldPrice     string   `json:"ancienPrix"`
	NewPrice     string   `json:"nouveauPrix"`
	Category     string   `json:"categorie"`
	SubCategory  string   `json:"sousCategorie"`
	SubCategory2 string   `json:"sousCategorie2"`
	SubCategory3 string   `json:"sousCategorie3"`
	Description  string   `json:"description"`
	Condition    string   `json:"etat"`
	SaleType     string   `json:"typeVente"`
	PaymentType  string   `json:"typePaiement"`
	Colors       []string `json:"couleurs"`
	Sizes        []string `json:"tailles"`
	Images       []string `json:"picturePaths"`

	Order *orderChangeRequest `json:"commande"`
	Offer *offerChangeRequest `json:"offre"`
}

func (h *PostHandler) UpdatePost(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdatePostInput{
		Title:        req.Title,
		Price:        req.Price,
		OldPrice:     req.OldPrice,
		NewPrice:     req.NewPrice,
		Category:     req.Category,
		SubCategory:  req.SubCategory,
		SubCategory2: req.SubCategory2,
		SubCategory3: req.SubCategory3,
		Description:  req.Description,
		Condition:    req.Condition,
		SaleType:     req.SaleType,
		PaymentType:  req.PaymentType,
		Colors:       req.Colors,
		Sizes:        req.Sizes,
		Images:       req.Images,
	}
	if req.Order != nil {
		input.Order = &usecase.OrderChange{
			Kind:    req.Order.Kind,
			BuyerID: req.Order.BuyerID,
			Status:  req.Order.Status,
		}
	}
	if req.Offer != nil {
		input.Offer = &usecase.OfferChange{
			Kind:          req.Offer.Kind,
			BuyerID:       req.Offer.BuyerID,
			Status:        req.Offer.Status,
			ProposedPrice: req.Offer.ProposedPrice,
		}
	}

	post, err := h.postUseCase.UpdatePost(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postUseCase.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Annonce supprimée"})
}

func (h *PostHandler) AddView(c echo.Context) error {
	post, err := h.postUseCase.AddView(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"views":        post.Views,
		"viewsHistory": post.ViewsHistory,
	})
}

type ratePostRequest struct {
	RaterID string  `json:"userId" validate:"required"`
	Value   float64 `json:"rating" validate:"min=0,max=5"`
}

func (h *PostHandler) RatePost(c echo.Context) error {
	var req ratePostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	summary, err := h.postUseCase.RatePost(c.Request().Context(), c.Param("id"), req.RaterID, req.Value)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, summary)
}

type getPostRatingRequest struct {
	RaterID string `json:"userId"`
}

func (h *PostHandler) GetPostRating(c echo.Context) error {
	var req getPostRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	summary, err := h.postUseCase.GetPostRating(c.Request().Context(), c.Param("id"), req.RaterID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, summary)
}

type postCommentRequest struct {
	AuthorID string `json:"userId" validate:"required"`
	Text     string `json:"comment" validate:"required"`
}

func (h *PostHandler) CommentOnPost(c echo.Context) error {
	var req postCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	comments, err := h.postUseCase.CommentOnPost(c.Request().Context(), c.Param("id"), req.AuthorID, req.Text)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *PostHandler) GetPostComments(c echo.Context) error {
	comments, err := h.postUseCase.GetPostComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *PostHandler) DeletePostComment(c echo.Context) error {
	comments, err := h.postUseCase.DeletePostComment(c.Request().Context(), c.Param("id"), c.Param("commentId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, comments)
}

func (h *PostHandler) GetBuyerOrders(c echo.Context) error {
	orders, err := h.postUseCase.GetBuyerOrders(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *PostHandler) GetSellerOrders(c echo.Context) error {
	orders, err := h.postUseCase.GetSellerOrders(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}
