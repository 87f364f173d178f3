package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/jpcunanan716/bestaccord-transportation-sub001/internal/config"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleColumns = `
	id,
	COALESCE(vehicle_type,''),
	COALESCE(plate_number,''),
	COALESCE(status,''),
	COALESCE(is_archived,0)`

// List returns vehicles, optionally only the available, non-archived ones
// offered to the booking wizard.
func (r VehicleRepository) List(q string, availableOnly bool) ([]models.Vehicle, error) {
	where := []string{"is_archived = 0"}
	args := []any{}
	if availableOnly {
		where = append(where, "status = ?")
		args = append(args, models.StatusAvailable)
	}
	if q = strings.TrimSpace(q); q != "" {
		where = append(where, "(vehicle_type LIKE ? OR plate_number LIKE ?)")
		like := "%" + q + "%"
		args = append(args, like, like)
	}

	query := "SELECT " + vehicleColumns + " FROM vehicles WHERE " + strings.Join(where, " AND ") + " ORDER BY id DESC"
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.VehicleType, &v.PlateNumber, &v.Status, &v.Archived); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r VehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	var v models.Vehicle
	err := r.db().QueryRow("SELECT "+vehicleColumns+" FROM vehicles WHERE id = ? LIMIT 1", id).
		Scan(&v.ID, &v.VehicleType, &v.PlateNumber, &v.Status, &v.Archived)
	if err == sql.ErrNoRows {
		return v, domain.NotFoundError{Resource: "vehicle", Err: err}
	}
	return v, err
}

func (r VehicleRepository) Create(p models.VehiclePayload) (int64, error) {
	status := strings.TrimSpace(p.Status)
	if status == "" {
		status = models.StatusAvailable
	}
	res, err := r.db().Exec(`
		INSERT INTO vehicles (vehicle_type, plate_number, status, is_archived, created_at, updated_at)
		VALUES (?,?,?,0,NOW(),NOW())`,
		strings.TrimSpace(p.VehicleType), strings.TrimSpace(p.PlateNumber), status)
	if err != nil {
		return 0, dupKeyConflict("vehicle", "Plate number is already registered.", err)
	}
	return res.LastInsertId()
}

func (r VehicleRepository) Update(id int64, p models.VehiclePayload) error {
	res, err := r.db().Exec(`
		UPDATE vehicles SET vehicle_type=?, plate_number=?, status=?, updated_at=NOW() WHERE id=?`,
		strings.TrimSpace(p.VehicleType), strings.TrimSpace(p.PlateNumber), strings.TrimSpace(p.Status), id)
	if err != nil {
		return dupKeyConflict("vehicle", "Plate number is already registered.", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

func (r VehicleRepository) SetArchived(id int64, archived bool) error {
	res, err := r.db().Exec(`UPDATE vehicles SET is_archived=?, updated_at=NOW() WHERE id=?`, archived, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}
