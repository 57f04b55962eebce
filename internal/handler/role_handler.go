package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coopsight/coopsight-backend/internal/response"
	"github.com/coopsight/coopsight-backend/internal/service"
	"github.com/coopsight/coopsight-backend/internal/validator"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

type createRoleRequest struct {
	Role            string   `json:"role" binding:"required"`
	Company         string   `json:"company" binding:"required"`
	SuggestedMajors []string `json:"suggestedMajors" binding:"required,min=1,dive,required"`
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req createRoleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationFail(c, fields)
		return
	}

	role, err := h.roleService.AddRole(req.Role, req.Company, req.SuggestedMajors)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}
	response.OK(c, "Role added successfully.", "role", role)
}

func (h *RoleHandler) List(c *gin.Context) {
	roleIDs, err := intListParam(c, "roleIds")
	if err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, err.Error())
		return
	}
	titles := stringListParam(c, "roles")
	companies := stringListParam(c, "companies")
	majors := stringListParam(c, "suggestedMajors")

	roles := h.roleService.GetRoles(roleIDs, titles, companies, majors)
	response.OK(c, "Roles obtained successfully.", "roles", roles)
}

// MatchByUser recommends role IDs whose suggested majors overlap the user's
// majors. Lookup failures on this path are 404s.
func (h *RoleHandler) MatchByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		response.ErrorMessage(c, http.StatusNotFound, "invalid userId")
		return
	}

	roleIDs, err := h.roleService.MatchingRolesForUser(userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, err)
		return
	}
	response.OK(c, "Roles successfully matched.", "matchingRoles", roleIDs)
}

// Trend returns aggregate review statistics for a role, spread at the top
// level of the body. Lookup failures on this path are 404s.
func (h *RoleHandler) Trend(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("roleId"))
	if err != nil {
		response.ErrorMessage(c, http.StatusNotFound, "invalid roleId")
		return
	}

	trend, err := h.roleService.RoleTrend(roleID)
	if err != nil {
		response.Error(c, http.StatusNotFound, err)
		return
	}
	response.OKFields(c, "Trend successfully received.", gin.H{
		"roleId":    trend.RoleID,
		"pay":       trend.Pay,
		"avgRating": trend.AvgRating,
		"avgCoop":   trend.AvgCoop,
	})
}
