package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/ports"
)

// ZoneHandler lets admins manage zone accounts.
type ZoneHandler struct {
	zones  recordManager[domain.Zone]
	images ports.ImageStore
}

func NewZoneHandler(zones recordManager[domain.Zone], images ports.ImageStore) *ZoneHandler {
	return &ZoneHandler{zones: zones, images: images}
}

type zoneRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Type     string `json:"type" form:"type"`
	ZoneName string `json:"zonename" form:"zonename" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone"`
	Note     string `json:"note" form:"note"`
	ZoneID   string `json:"zoneId" form:"zoneId" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Status   string `json:"status" form:"status" validate:"omitempty,oneof=pending accepted rejected active inactive"`
}

// AddZone creates a zone account with an optional "image" file.
//
// @Summary      Add zone
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name      formData  string  true   "Display name"
// @Param        zonename  formData  string  true   "Unique zone name"
// @Param        email     formData  string  true   "Contact email"
// @Param        zoneId    formData  string  true   "Sign-in id"
// @Param        password  formData  string  true   "Sign-in password"
// @Param        image     formData  file    false  "jpeg/jpg/png image"
// @Success      201  {object}  domain.Zone
// @Failure      400  {object}  messageResponse
// @Router       /admin/add-zone [post]
func (h *ZoneHandler) AddZone(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req zoneRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	image, err := saveOptionalImage(c, h.images, "image")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	z, err := h.zones.Create(ctx, actor, &domain.Zone{
		Name:     req.Name,
		Type:     req.Type,
		ZoneName: req.ZoneName,
		Email:    req.Email,
		Phone:    req.Phone,
		Note:     req.Note,
		ZoneID:   req.ZoneID,
		Password: req.Password,
		Status:   domain.ZoneStatus(req.Status),
		Image:    image,
	})
	if err != nil {
		discardImage(ctx, h.images, image)
		return err
	}
	return c.JSON(http.StatusCreated, z)
}

// @Summary      List zones
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Zone
// @Router       /admin/all-zones [get]
func (h *ZoneHandler) ListZones(c echo.Context) error {
	return listRecords(c, h.zones)
}

// @Summary      Delete zone
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Zone id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /admin/delete-zone/{id} [delete]
func (h *ZoneHandler) DeleteZone(c echo.Context) error {
	return deleteRecord(c, h.zones, "zone")
}

// UserHandler lets admins list and remove end users.
type UserHandler struct {
	users recordManager[domain.User]
}

func NewUserHandler(users recordManager[domain.User]) *UserHandler {
	return &UserHandler{users: users}
}

// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /admin/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	return listRecords(c, h.users)
}

// @Summary      Delete user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /admin/delete-user/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	return deleteRecord(c, h.users, "user")
}
