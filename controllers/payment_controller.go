package controllers

import (
	"net/http"

	"sewakos-backend/apperr"
	"sewakos-backend/models"
	"sewakos-backend/services"
	"sewakos-backend/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Payments *services.PaymentService
	Verifier *services.VerificationService
	Receipts *services.ReceiptService
}

func NewPaymentController(p *services.PaymentService, v *services.VerificationService, r *services.ReceiptService) *PaymentController {
	return &PaymentController{Payments: p, Verifier: v, Receipts: r}
}

func (pc *PaymentController) Submit(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.SubmitPaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, apperr.Validation("amount, method and proof_ref are required"))
		return
	}
	payment, err := pc.Payments.Submit(caller, bookingID, in)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusCreated, payment)
}

func (pc *PaymentController) ListByBooking(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	list, err := pc.Payments.ListByBooking(caller, bookingID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, list)
}

type VerifyPaymentPayload struct {
	Decision string `json:"decision" binding:"required"`
}

func (pc *PaymentController) Verify(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload VerifyPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Error(c, apperr.Validation("decision is required"))
		return
	}
	result, err := pc.Verifier.Verify(caller, paymentID, models.PaymentStatus(payload.Decision))
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.OK(c, http.StatusOK, result)
}

func (pc *PaymentController) Receipt(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	paymentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pdfBytes, filename, err := pc.Receipts.Build(caller, paymentID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
