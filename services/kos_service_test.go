package services

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"sewakos-backend/apperr"
)

func TestCreateKos_Validation(t *testing.T) {
	gdb, _ := newTestDB(t)
	svc := NewKosService(gdb)

	_, err := svc.Create(owner, CreateKosInput{Name: "  ", Address: "Jl. Mawar 1"})
	wantCode(t, err, apperr.CodeValidation)
}

func TestCreateKos_Success(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewKosService(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `kos`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	kos, err := svc.Create(owner, CreateKosInput{
		Name:       "Kos Melati",
		Address:    "Jl. Mawar 1",
		Facilities: []string{"wifi", "parkir"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if kos.OwnerID != owner.ID {
		t.Errorf("owner_id = %d, want %d", kos.OwnerID, owner.ID)
	}
}

func TestListKos_NoFilters(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewKosService(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `kos`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	list, err := svc.List(SearchKosInput{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if list == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestListKos_KeywordFilter(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewKosService(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `kos`").
		WithArgs("%melati%", "%melati%", "%melati%", "%melati%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := svc.List(SearchKosInput{Keyword: "melati"}); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListKos_PriceAndFacilityFilter(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewKosService(gdb)

	// price bounds and facilities narrow via a rooms subquery
	mock.ExpectQuery("SELECT (.+) FROM `kos` WHERE id IN \\(SELECT (.+) FROM `rooms`").
		WithArgs(300000.0, 800000.0, "%AC%", "%KM Dalam%").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.List(SearchKosInput{
		MinPrice:   300000,
		MaxPrice:   800000,
		Facilities: []string{"AC", " KM Dalam "},
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateKos_NotOwner(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewKosService(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `kos`").
		WillReturnRows(kosRows(2, 999))

	name := "Kos Baru"
	_, err := svc.Update(owner, 2, UpdateKosInput{Name: &name})
	wantCode(t, err, apperr.CodeForbidden)
}

func TestDeleteKos_OccupiedRoomRefused(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewKosService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `kos`").
		WillReturnRows(kosRows(2, owner.ID))
	mock.ExpectQuery("SELECT count(.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := svc.Delete(owner, 2)
	wantCode(t, err, apperr.CodeConflict)
}

func TestDeleteKos_Success(t *testing.T) {
	gdb, mock := newTestDB(t)
	svc := NewKosService(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `kos`").
		WillReturnRows(kosRows(2, owner.ID))
	mock.ExpectQuery("SELECT count(.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// soft deletes: rooms first, then the kos itself
	mock.ExpectExec("UPDATE `rooms` SET").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("UPDATE `kos` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.Delete(owner, 2); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
