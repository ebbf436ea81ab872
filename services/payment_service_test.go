package services

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"sewakos-backend/apperr"
	"sewakos-backend/models"
)

func TestSubmitPayment_Success(t *testing.T) {
	t.Setenv("PAYMENT_REQUIRE_FULL_AMOUNT", "true")
	gdb, mock := newTestDB(t)
	svc := NewPaymentService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRows(7, tenant.ID, 5, 1000000, models.BookingAwaitingPayment))
	mock.ExpectExec("UPDATE `bookings` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `payments`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	payment, err := svc.Submit(tenant, 7, SubmitPaymentInput{
		Amount:   1000000,
		Method:   "transfer",
		ProofRef: "uploads/proof/abc.jpg",
	})
	if err != nil {
		t.Fatalf("submit payment: %v", err)
	}
	if payment.Status != models.PaymentPending {
		t.Fatalf("status = %s; want %s", payment.Status, models.PaymentPending)
	}
	if payment.BookingID != 7 {
		t.Fatalf("booking id = %d; want 7", payment.BookingID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitPayment_WrongBookingStatus(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewPaymentService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRows(7, tenant.ID, 5, 1000000, models.BookingAwaitingVerification))
	mock.ExpectRollback()

	_, err := svc.Submit(tenant, 7, SubmitPaymentInput{Amount: 1000000, Method: "transfer", ProofRef: "x"})
	wantCode(t, err, apperr.CodeConflict)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitPayment_NotTenantOfBooking(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewPaymentService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRows(7, 555, 5, 1000000, models.BookingAwaitingPayment))
	mock.ExpectRollback()

	_, err := svc.Submit(tenant, 7, SubmitPaymentInput{Amount: 1000000, Method: "transfer", ProofRef: "x"})
	wantCode(t, err, apperr.CodeForbidden)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSubmitPayment_BookingNotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewPaymentService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.Submit(tenant, 404, SubmitPaymentInput{Amount: 1000000, Method: "transfer", ProofRef: "x"})
	wantCode(t, err, apperr.CodeNotFound)
}

func TestSubmitPayment_AmountBelowTotal(t *testing.T) {
	t.Setenv("PAYMENT_REQUIRE_FULL_AMOUNT", "true")
	gdb, mock := newTestDB(t)
	svc := NewPaymentService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRows(7, tenant.ID, 5, 1000000, models.BookingAwaitingPayment))
	mock.ExpectRollback()

	_, err := svc.Submit(tenant, 7, SubmitPaymentInput{Amount: 250000, Method: "transfer", ProofRef: "x"})
	wantCode(t, err, apperr.CodeValidation)
}

func TestSubmitPayment_AmountPolicyDisabled(t *testing.T) {
	t.Setenv("PAYMENT_REQUIRE_FULL_AMOUNT", "false")
	gdb, mock := newTestDB(t)
	svc := NewPaymentService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRows(7, tenant.ID, 5, 1000000, models.BookingAwaitingPayment))
	mock.ExpectExec("UPDATE `bookings` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `payments`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	payment, err := svc.Submit(tenant, 7, SubmitPaymentInput{Amount: 250000, Method: "transfer", ProofRef: "x"})
	if err != nil {
		t.Fatalf("submit payment: %v", err)
	}
	if payment.Amount != 250000 {
		t.Fatalf("amount = %v; want 250000", payment.Amount)
	}
}

func TestSubmitPayment_InvalidInput(t *testing.T) {
	gdb, _ := newTestDB(t)
	svc := NewPaymentService(gdb)

	_, err := svc.Submit(tenant, 7, SubmitPaymentInput{Amount: 0, Method: "transfer", ProofRef: "x"})
	wantCode(t, err, apperr.CodeValidation)

	_, err = svc.Submit(tenant, 7, SubmitPaymentInput{Amount: 100, Method: " ", ProofRef: "x"})
	wantCode(t, err, apperr.CodeValidation)

	_, err = svc.Submit(tenant, 7, SubmitPaymentInput{Amount: 100, Method: "transfer", ProofRef: ""})
	wantCode(t, err, apperr.CodeValidation)
}

func TestListPayments_TenantScope(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewPaymentService(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(bookingRows(7, tenant.ID, 5, 1000000, models.BookingAwaitingVerification))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(roomRows(5, 2, 500000, models.RoomOccupied))
	mock.ExpectQuery("SELECT (.+) FROM `kos`").
		WillReturnRows(kosRows(2, owner.ID))
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(paymentRows(3, 7, 1000000, models.PaymentPending))

	list, err := svc.ListByBooking(tenant, 7)
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(list) != 1 || list[0].BookingID != 7 {
		t.Fatalf("unexpected payment list: %+v", list)
	}
}

func TestListPayments_StrangerForbidden(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewPaymentService(gdb)

	// booking belongs to tenant 555 under kos owner 777: neither caller fits
	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT (.+) FROM `bookings`").
			WillReturnRows(bookingRows(7, 555, 5, 1000000, models.BookingAwaitingVerification))
		mock.ExpectQuery("SELECT (.+) FROM `rooms`").
			WillReturnRows(roomRows(5, 2, 500000, models.RoomOccupied))
		mock.ExpectQuery("SELECT (.+) FROM `kos`").
			WillReturnRows(kosRows(2, 777))
	}

	_, err := svc.ListByBooking(tenant, 7)
	wantCode(t, err, apperr.CodeForbidden)

	_, err = svc.ListByBooking(owner, 7)
	wantCode(t, err, apperr.CodeForbidden)
}
