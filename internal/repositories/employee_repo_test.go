package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

func TestEmployeeCreateDuplicateCodeIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO employees").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'EMP-01' for key 'employee_id'"})

	repo := EmployeeRepository{DB: db}
	_, err = repo.Create(models.EmployeePayload{EmployeeID: "EMP-01", FullName: "Juan Dela Cruz", Role: models.RoleDriver})
	if !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestEmployeeUpdateDuplicateCodeIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE employees SET").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	repo := EmployeeRepository{DB: db}
	err = repo.Update(9, models.EmployeePayload{EmployeeID: "EMP-01", FullName: "Juan Dela Cruz", Role: models.RoleDriver})
	if !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
}
