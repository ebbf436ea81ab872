package services

import (
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sewakos-backend/apperr"
	"sewakos-backend/models"
)

// newTestDB opens gorm over sqlmock so service logic can run against
// scripted SQL without a real MySQL.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}
	return gdb, mock
}

func wantCode(t *testing.T, err error, code apperr.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected apperr with code %s, got %v", code, err)
	}
	if ae.Code != code {
		t.Fatalf("expected code %s, got %s (%v)", code, ae.Code, err)
	}
}

func roomRows(id, kosID uint, price float64, status models.RoomStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "kos_id", "name", "price", "status"}).
		AddRow(id, kosID, "Kamar A1", price, string(status))
}

func kosRows(id, ownerID uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "name", "address"}).
		AddRow(id, ownerID, "Kos Melati", "Jl. Mawar 1")
}

func bookingRows(id, tenantID, roomID uint, total float64, status models.BookingStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reference_code", "tenant_id", "room_id",
		"start_date", "duration_months", "total_price", "status",
	}).AddRow(id, "BK-TESTREF00000", tenantID, roomID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), 2, total, string(status))
}

func userRows(id uint, username, email, passwordHash, role string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "email", "password", "role", "full_name", "phone",
	}).AddRow(id, username, email, passwordHash, role, "Budi Santoso", "081234567890")
}

func paymentRows(id, bookingID uint, amount float64, status models.PaymentStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "booking_id", "amount", "method", "proof_ref", "status", "submitted_at",
	}).AddRow(id, bookingID, amount, "transfer", "uploads/proof/abc.jpg", string(status), time.Now().UTC())
}
