package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coopsight/coopsight-backend/internal/response"
	"github.com/coopsight/coopsight-backend/internal/service"
	"github.com/coopsight/coopsight-backend/internal/validator"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// createUserRequest carries majors as a single " & "-joined string, matching
// the round-trip format of the user's major field on reads.
type createUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Major string `json:"major" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationFail(c, fields)
		return
	}

	user, err := h.userService.AddUser(req.Name, req.Email, service.SplitMajorSpec(req.Major))
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}
	response.OK(c, "User added successfully.", "user", user)
}

func (h *UserHandler) List(c *gin.Context) {
	userIDs, err := intListParam(c, "userIds")
	if err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	names := stringListParam(c, "names")
	majors := stringListParam(c, "majors")
	emails := stringListParam(c, "emails")

	users := h.userService.GetUsers(userIDs, names, majors, emails)
	response.OK(c, "Users obtained successfully.", "users", users)
}
