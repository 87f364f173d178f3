package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/booking"
	intconfig "github.com/jpcunanan716/bestaccord-transportation-sub001/internal/config"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

// BookingRepository wraps DB access for the bookings table. The list
// columns (destinations, crew, roles) are stored as JSON text.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	id,
	COALESCE(product_name,''),
	COALESCE(quantity,0),
	COALESCE(number_of_packages,0),
	COALESCE(unit_per_package,0),
	COALESCE(gross_weight,0),
	COALESCE(delivery_fee,0),
	COALESCE(company_name,''),
	COALESCE(shipper_consignor_name,''),
	COALESCE(customer_establishment_name,''),
	COALESCE(origin_address,''),
	COALESCE(trip_type,''),
	COALESCE(number_of_stops,0),
	COALESCE(destination_addresses,'[]'),
	COALESCE(vehicle_id,''),
	COALESCE(vehicle_type,''),
	COALESCE(plate_number,''),
	COALESCE(date_needed,''),
	COALESCE(time_needed,''),
	COALESCE(employee_assigned,'[]'),
	COALESCE(role_of_employee,'[]'),
	COALESCE(trip_status,''),
	COALESCE(is_archived,0),
	COALESCE(created_at,'')`

// ListFilter narrows the booking list the same way the dashboard does:
// free-text match, trip status, and the archive toggle.
type ListFilter struct {
	Query    string
	Status   string
	Archived bool
	Page     int
	Limit    int
}

func (r BookingRepository) List(f ListFilter) ([]models.Booking, error) {
	where := []string{"is_archived = ?"}
	args := []any{f.Archived}

	if q := strings.TrimSpace(f.Query); q != "" {
		where = append(where, "(product_name LIKE ? OR company_name LIKE ? OR customer_establishment_name LIKE ? OR plate_number LIKE ?)")
		like := "%" + q + "%"
		args = append(args, like, like, like, like)
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, "trip_status = ?")
		args = append(args, s)
	}

	query := "SELECT " + bookingColumns + " FROM bookings WHERE " + strings.Join(where, " AND ") + " ORDER BY id DESC"

	if f.Page > 0 && f.Limit > 0 {
		limit := f.Limit
		if limit > 200 {
			limit = 200
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, (f.Page-1)*limit)
	}

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	row := r.db().QueryRow("SELECT "+bookingColumns+" FROM bookings WHERE id = ? LIMIT 1", id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

func (r BookingRepository) Create(s booking.Submission) (int64, error) {
	dest, crew, roles := encodeBookingLists(s)
	res, err := r.db().Exec(`
		INSERT INTO bookings (
			product_name, quantity, number_of_packages, unit_per_package,
			gross_weight, delivery_fee, company_name, shipper_consignor_name,
			customer_establishment_name, origin_address, trip_type,
			number_of_stops, destination_addresses, vehicle_id, vehicle_type,
			plate_number, date_needed, time_needed, employee_assigned,
			role_of_employee, trip_status, is_archived, created_at, updated_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,0,NOW(),NOW())`,
		s.ProductName, s.Quantity, s.NumberOfPackages, s.UnitPerPackage,
		s.GrossWeight, s.DeliveryFee, s.CompanyName, s.ShipperConsignorName,
		s.CustomerEstablishmentName, s.OriginAddress, s.TripType,
		s.NumberOfStops, dest, s.VehicleID, s.VehicleType,
		s.PlateNumber, s.DateNeeded, s.TimeNeeded, crew,
		roles, "Pending",
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) Update(id int64, s booking.Submission) error {
	dest, crew, roles := encodeBookingLists(s)
	res, err := r.db().Exec(`
		UPDATE bookings SET
			product_name=?, quantity=?, number_of_packages=?, unit_per_package=?,
			gross_weight=?, delivery_fee=?, company_name=?, shipper_consignor_name=?,
			customer_establishment_name=?, origin_address=?, trip_type=?,
			number_of_stops=?, destination_addresses=?, vehicle_id=?, vehicle_type=?,
			plate_number=?, date_needed=?, time_needed=?, employee_assigned=?,
			role_of_employee=?, updated_at=NOW()
		WHERE id=?`,
		s.ProductName, s.Quantity, s.NumberOfPackages, s.UnitPerPackage,
		s.GrossWeight, s.DeliveryFee, s.CompanyName, s.ShipperConsignorName,
		s.CustomerEstablishmentName, s.OriginAddress, s.TripType,
		s.NumberOfStops, dest, s.VehicleID, s.VehicleType,
		s.PlateNumber, s.DateNeeded, s.TimeNeeded, crew,
		roles, id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (r BookingRepository) SetArchived(id int64, archived bool) error {
	res, err := r.db().Exec(`UPDATE bookings SET is_archived=?, updated_at=NOW() WHERE id=?`, archived, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func (r BookingRepository) SetTripStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE bookings SET trip_status=?, updated_at=NOW() WHERE id=?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var dest, crew, roles string
	err := row.Scan(
		&b.ID,
		&b.ProductName,
		&b.Quantity,
		&b.NumberOfPackages,
		&b.UnitPerPackage,
		&b.GrossWeight,
		&b.DeliveryFee,
		&b.CompanyName,
		&b.ShipperConsignorName,
		&b.CustomerEstablishmentName,
		&b.OriginAddress,
		&b.TripType,
		&b.NumberOfStops,
		&dest,
		&b.VehicleID,
		&b.VehicleType,
		&b.PlateNumber,
		&b.DateNeeded,
		&b.TimeNeeded,
		&crew,
		&roles,
		&b.TripStatus,
		&b.Archived,
		&b.CreatedAt,
	)
	if err != nil {
		return b, err
	}
	if b.DestinationAddresses, err = decodeStringList(dest); err != nil {
		return b, listDecodeError(b.ID, "destination_addresses", err)
	}
	if b.EmployeeAssigned, err = decodeStringList(crew); err != nil {
		return b, listDecodeError(b.ID, "employee_assigned", err)
	}
	if b.RoleOfEmployee, err = decodeStringList(roles); err != nil {
		return b, listDecodeError(b.ID, "role_of_employee", err)
	}
	return b, nil
}

// listDecodeError flags a corrupt JSON list cell. An empty decode result
// must stay distinguishable from genuinely empty data, so the error is
// surfaced instead of swallowed.
func listDecodeError(id int64, column string, err error) error {
	return domain.InconsistencyError{
		Msg: fmt.Sprintf("booking %d has a malformed %s list", id, column),
		Err: err,
	}
}

func encodeBookingLists(s booking.Submission) (dest, crew, roles string) {
	return encodeStringList(s.DestinationAddresses),
		encodeStringList(s.EmployeeAssigned),
		encodeStringList(s.RoleOfEmployee)
}

func encodeStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	out, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(out)
}

func decodeStringList(raw string) ([]string, error) {
	out := []string{}
	if strings.TrimSpace(raw) == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}
