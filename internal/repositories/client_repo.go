package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/jpcunanan716/bestaccord-transportation-sub001/internal/config"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain"
	"github.com/jpcunanan716/bestaccord-transportation-sub001/internal/domain/models"
)

// ClientRepository wraps DB access for client companies and their branches.
// One row is one branch; the company is denormalized onto the row.
type ClientRepository struct {
	DB *sql.DB
}

func (r ClientRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const clientColumns = `
	id,
	COALESCE(company_name,''),
	COALESCE(branch_name,''),
	COALESCE(shipper,''),
	COALESCE(street,''),
	COALESCE(barangay,''),
	COALESCE(city,''),
	COALESCE(province,''),
	COALESCE(region,''),
	COALESCE(is_archived,0)`

func (r ClientRepository) List(q string, includeArchived bool) ([]models.ClientBranch, error) {
	where := []string{}
	args := []any{}
	if !includeArchived {
		where = append(where, "is_archived = 0")
	}
	if q = strings.TrimSpace(q); q != "" {
		where = append(where, "(company_name LIKE ? OR branch_name LIKE ?)")
		like := "%" + q + "%"
		args = append(args, like, like)
	}

	query := "SELECT " + clientColumns + " FROM client_branches"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY company_name, branch_name"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.ClientBranch{}
	for rows.Next() {
		var b models.ClientBranch
		if err := rows.Scan(&b.ID, &b.CompanyName, &b.BranchName, &b.Shipper,
			&b.Street, &b.Barangay, &b.City, &b.Province, &b.Region, &b.Archived); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Companies lists the distinct active company names for the wizard's
// company dropdown.
func (r ClientRepository) Companies() ([]string, error) {
	rows, err := r.db().Query(`SELECT DISTINCT company_name FROM client_branches WHERE is_archived = 0 ORDER BY company_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// BranchesByCompany lists the active branches selectable as destinations
// once a company is chosen.
func (r ClientRepository) BranchesByCompany(company string) ([]models.ClientBranch, error) {
	rows, err := r.db().Query("SELECT "+clientColumns+" FROM client_branches WHERE company_name = ? AND is_archived = 0 ORDER BY branch_name", company)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.ClientBranch{}
	for rows.Next() {
		var b models.ClientBranch
		if err := rows.Scan(&b.ID, &b.CompanyName, &b.BranchName, &b.Shipper,
			&b.Street, &b.Barangay, &b.City, &b.Province, &b.Region, &b.Archived); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r ClientRepository) GetByID(id int64) (models.ClientBranch, error) {
	var b models.ClientBranch
	err := r.db().QueryRow("SELECT "+clientColumns+" FROM client_branches WHERE id = ? LIMIT 1", id).
		Scan(&b.ID, &b.CompanyName, &b.BranchName, &b.Shipper,
			&b.Street, &b.Barangay, &b.City, &b.Province, &b.Region, &b.Archived)
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "client branch", Err: err}
	}
	return b, err
}

func (r ClientRepository) Create(p models.ClientBranchPayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO client_branches (company_name, branch_name, shipper, street, barangay, city, province, region, is_archived, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,0,NOW(),NOW())`,
		strings.TrimSpace(p.CompanyName), strings.TrimSpace(p.BranchName), p.Shipper,
		p.Street, p.Barangay, p.City, p.Province, p.Region)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ClientRepository) Update(id int64, p models.ClientBranchPayload) error {
	res, err := r.db().Exec(`
		UPDATE client_branches
		SET company_name=?, branch_name=?, shipper=?, street=?, barangay=?, city=?, province=?, region=?, updated_at=NOW()
		WHERE id=?`,
		strings.TrimSpace(p.CompanyName), strings.TrimSpace(p.BranchName), p.Shipper,
		p.Street, p.Barangay, p.City, p.Province, p.Region, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "client branch"}
	}
	return nil
}

func (r ClientRepository) SetArchived(id int64, archived bool) error {
	res, err := r.db().Exec(`UPDATE client_branches SET is_archived=?, updated_at=NOW() WHERE id=?`, archived, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "client branch"}
	}
	return nil
}
