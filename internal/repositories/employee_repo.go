package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/jpcunanan716/bestaccord-transportation-sub001/internal/config"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

type EmployeeRepository struct {
	DB *sql.DB
}

func (r EmployeeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const employeeColumns = `
	id,
	COALESCE(employee_id,''),
	COALESCE(full_name,''),
	COALESCE(role,''),
	COALESCE(status,''),
	COALESCE(is_archived,0)`

func (r EmployeeRepository) List(role string, availableOnly bool) ([]models.Employee, error) {
	where := []string{"is_archived = 0"}
	args := []any{}
	if role = strings.TrimSpace(role); role != "" {
		where = append(where, "role = ?")
		args = append(args, role)
	}
	if availableOnly {
		where = append(where, "status = ?")
		args = append(args, models.StatusAvailable)
	}

	query := "SELECT " + employeeColumns + " FROM employees WHERE " + strings.Join(where, " AND ") + " ORDER BY full_name"
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Role, &e.Status, &e.Archived); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r EmployeeRepository) GetByEmployeeID(employeeID string) (models.Employee, error) {
	var e models.Employee
	err := r.db().QueryRow("SELECT "+employeeColumns+" FROM employees WHERE employee_id = ? LIMIT 1", employeeID).
		Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Role, &e.Status, &e.Archived)
	if err == sql.ErrNoRows {
		return e, domain.NotFoundError{Resource: "employee", Err: err}
	}
	return e, err
}

func (r EmployeeRepository) Create(p models.EmployeePayload) (int64, error) {
	status := strings.TrimSpace(p.Status)
	if status == "" {
		status = models.StatusAvailable
	}
	res, err := r.db().Exec(`
		INSERT INTO employees (employee_id, full_name, role, status, is_archived, created_at, updated_at)
		VALUES (?,?,?,?,0,NOW(),NOW())`,
		strings.TrimSpace(p.EmployeeID), strings.TrimSpace(p.FullName), strings.TrimSpace(p.Role), status)
	if err != nil {
		return 0, dupKeyConflict("employee", "Employee id is already registered.", err)
	}
	return res.LastInsertId()
}

func (r EmployeeRepository) Update(id int64, p models.EmployeePayload) error {
	res, err := r.db().Exec(`
		UPDATE employees SET employee_id=?, full_name=?, role=?, status=?, updated_at=NOW() WHERE id=?`,
		strings.TrimSpace(p.EmployeeID), strings.TrimSpace(p.FullName), strings.TrimSpace(p.Role), strings.TrimSpace(p.Status), id)
	if err != nil {
		return dupKeyConflict("employee", "Employee id is already registered.", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "employee"}
	}
	return nil
}

func (r EmployeeRepository) SetArchived(id int64, archived bool) error {
	res, err := r.db().Exec(`UPDATE employees SET is_archived=?, updated_at=NOW() WHERE id=?`, archived, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "employee"}
	}
	return nil
}
