package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"sewakos-backend/apperr"
	"sewakos-backend/services"
	"sewakos-backend/utils"

	"github.com/gin-gonic/gin"
)

type KosController struct {
	Kos *services.KosService
}

func NewKosController(svc *services.KosService) *KosController {
	return &KosController{Kos: svc}
}

// List serves the public catalog; keyword, min_price, max_price and
// facilities (comma-separated) narrow the result.
func (kc *KosController) List(c *gin.Context) {
	in := services.SearchKosInput{Keyword: c.Query("keyword")}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			utils.Error(c, apperr.Validation("min_price must be a non-negative number"))
			return
		}
		in.MinPrice = v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			utils.Error(c, apperr.Validation("max_price must be a non-negative number"))
			return
		}
		in.MaxPrice = v
	}
	if raw := c.Query("facilities"); raw != "" {
		in.Facilities = strings.Split(raw, ",")
	}

	list, err := kc.Kos.List(in)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, list)
}

func (kc *KosController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	kos, err := kc.Kos.Detail(id)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, kos)
}

func (kc *KosController) Create(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	var in services.CreateKosInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, apperr.Validation("name and address are required"))
		return
	}
	kos, err := kc.Kos.Create(caller, in)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, kos)
}

func (kc *KosController) Update(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.UpdateKosInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, apperr.Validation("invalid request body"))
		return
	}
	kos, err := kc.Kos.Update(caller, id, in)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, kos)
}

func (kc *KosController) Delete(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := kc.Kos.Delete(caller, id); err != nil {
		utils.Error(c, err)
		return
	}
	utils.OKMessage(c, http.StatusOK, "kos deleted")
}
