package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coopsight/coopsight-backend/internal/response"
	"github.com/coopsight/coopsight-backend/internal/service"
	"github.com/coopsight/coopsight-backend/internal/validator"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Every numeric field is required, which also rejects zero values; a zero
// pay, rating, or coop has never been accepted on this endpoint.
type createReviewRequest struct {
	UserID  int     `json:"userId" binding:"required"`
	RoleID  int     `json:"roleId" binding:"required"`
	Pay     float64 `json:"pay" binding:"required,gte=0"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Coop    int     `json:"coop" binding:"required,min=1,max=3"`
	Comment string  `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationFail(c, fields)
		return
	}

	review, err := h.reviewService.AddReview(req.UserID, req.RoleID, req.Pay, req.Rating, req.Coop, req.Comment)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}
	response.OK(c, "Review has been successfully added.", "review", review)
}

func (h *ReviewHandler) List(c *gin.Context) {
	f, err := reviewFilterFromQuery(c)
	if err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	reviews := h.reviewService.GetReviews(f)
	response.OK(c, "Reviews obtained successfully.", "reviews", reviews)
}

// reviewFilterFromQuery builds a ReviewFilter from the query string, leaving
// absent parameters at their neutral defaults.
func reviewFilterFromQuery(c *gin.Context) (service.ReviewFilter, error) {
	f := service.DefaultReviewFilter()

	var err error
	if f.ReviewIDs, err = intListParam(c, "reviewIds"); err != nil {
		return f, err
	}
	if f.UserIDs, err = intListParam(c, "userIds"); err != nil {
		return f, err
	}
	if f.RoleIDs, err = intListParam(c, "roleIds"); err != nil {
		return f, err
	}
	if f.MinPay, err = floatParam(c, "minPay", f.MinPay); err != nil {
		return f, err
	}
	if f.MaxPay, err = floatParam(c, "maxPay", f.MaxPay); err != nil {
		return f, err
	}
	if f.MinRating, err = intParam(c, "minRating", f.MinRating); err != nil {
		return f, err
	}
	if f.MaxRating, err = intParam(c, "maxRating", f.MaxRating); err != nil {
		return f, err
	}
	if f.MinCoop, err = intParam(c, "minCoop", f.MinCoop); err != nil {
		return f, err
	}
	if f.MaxCoop, err = intParam(c, "maxCoop", f.MaxCoop); err != nil {
		return f, err
	}
	return f, nil
}
