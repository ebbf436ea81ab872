package controllers

import (
	"net/http"

	"sewakos-backend/apperr"
	"sewakos-backend/services"
	"sewakos-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Rooms: svc}
}

func (rc *RoomController) ListByKos(c *gin.Context) {
	kosID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	list, err := rc.Rooms.ListByKos(kosID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, list)
}

func (rc *RoomController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.Detail(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, room)
}

func (rc *RoomController) Create(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	kosID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.CreateRoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, apperr.Validation("name and price are required"))
		return
	}
	room, err := rc.Rooms.Create(caller, kosID, in)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, room)
}

func (rc *RoomController) Update(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.UpdateRoomInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, apperr.Validation("invalid request body"))
		return
	}
	room, err := rc.Rooms.Update(caller, id, in)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, room)
}

func (rc *RoomController) Delete(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := rc.Rooms.Delete(caller, id); err != nil {
		utils.Error(c, err)
		return
	}
	utils.OKMessage(c, http.StatusOK, "room deleted")
}
