package services

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"sewakos-backend/apperr"
	"sewakos-backend/models"

	"github.com/phpdave11/gofpdf"
	"gorm.io/gorm"
)

// ReceiptService renders a PDF receipt for a verified payment.
type ReceiptService struct {
	DB *gorm.DB
}

func NewReceiptService(db *gorm.DB) *ReceiptService {
	return &ReceiptService{DB: db}
}

// Build returns the receipt bytes and a suggested filename. Only the
// booking's tenant or the kos owner may download it, and only once the
// payment is verified.
func (s *ReceiptService) Build(caller models.Caller, paymentID uint) ([]byte, string, error) {
	var payment models.Payment
	if err := s.DB.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.NotFound("payment not found")
		}
		return nil, "", dbErr("receipt: load payment", err)
	}

	var booking models.Booking
	if err := s.DB.First(&booking, payment.BookingID).Error; err != nil {
		return nil, "", dbErr("receipt: load booking", err)
	}

	var room models.Room
	if err := s.DB.First(&room, booking.RoomID).Error; err != nil {
		return nil, "", dbErr("receipt: load room", err)
	}
	var kos models.Kos
	if err := s.DB.First(&kos, room.KosID).Error; err != nil {
		return nil, "", dbErr("receipt: load kos", err)
	}

	if err := authorizeBookingAccess(caller, &booking, kos.OwnerID); err != nil {
		return nil, "", err
	}
	if payment.Status != models.PaymentVerified {
		return nil, "", apperr.Conflict("receipt is only available for verified payments")
	}

	var tenant models.User
	if err := s.DB.First(&tenant, booking.TenantID).Error; err != nil {
		return nil, "", dbErr("receipt: load tenant", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No  : RCP-%d-%s", payment.ID, booking.ReferenceCode),
		fmt.Sprintf("Issued      : %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Tenant      : %s", tenant.FullName),
		fmt.Sprintf("Kos         : %s", kos.Name),
		fmt.Sprintf("Room        : %s", room.Name),
		fmt.Sprintf("Period      : %s, %d month(s)", booking.StartDate.Format("2006-01-02"), booking.DurationMonths),
		fmt.Sprintf("Amount      : %.2f", payment.Amount),
		fmt.Sprintf("Method      : %s", payment.Method),
		fmt.Sprintf("Verified At : %s", payment.UpdatedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt confirms the payment above was verified by the kos owner.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", dbErr("receipt: render pdf", err)
	}

	filename := fmt.Sprintf("RECEIPT_%s_%d.pdf", booking.ReferenceCode, payment.ID)
	return buf.Bytes(), filename, nil
}
