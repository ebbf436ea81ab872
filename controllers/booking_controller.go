package controllers

import (
	"net/http"

	"sewakos-backend/apperr"
	"sewakos-backend/models"
	"sewakos-backend/services"
	"sewakos-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

func (bc *BookingController) Create(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var in services.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, apperr.Validation("room_id, start_date and duration_months are required"))
		return
	}
	booking, err := bc.Bookings.Create(caller, in)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, booking)
}

func (bc *BookingController) List(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	list, err := bc.Bookings.ListFor(caller)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, list)
}

func (bc *BookingController) Detail(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := bc.Bookings.Detail(caller, id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, booking)
}

type UpdateBookingStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (bc *BookingController) UpdateStatus(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload UpdateBookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Error(c, apperr.Validation("status is required"))
		return
	}
	booking, err := bc.Bookings.UpdateStatus(caller, id, models.BookingStatus(payload.Status))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, booking)
}
