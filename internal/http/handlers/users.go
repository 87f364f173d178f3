package handlers

import (
	"database/sql"
	"net/http"

	intconfig "github.com/jpcunanan716/bestaccord-transportation-sub001/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const userColumns = `id, name, username, email, COALESCE(phone,''), role, status`

func scanUser(row interface{ Scan(...any) error }) (AuthUser, error) {
	var u AuthUser
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status)
	return u, err
}

// GET /api/users
func GetUsers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`SELECT ` + userColumns + ` FROM users ORDER BY id`)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list users", err)
		return
	}
	defer rows.Close()

	users := []AuthUser{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to scan user", err)
			return
		}
		users = append(users, u)
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	u, err := scanUser(intconfig.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		respondError(c, http.StatusNotFound, "not_found", "user not found", nil)
		return
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load user", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type userPayload struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Password string `json:"password"`
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var p userPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	if p.Role == "" {
		p.Role = "user"
	}
	if p.Status == "" {
		p.Status = "active"
	}
	if p.Password == "" {
		RespondError(c, http.StatusBadRequest, "password is required", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
    `, p.Name, p.Username, p.Email, p.Phone, string(hash), p.Role, p.Status)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create user", err)
		return
	}
	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	var p userPayload
	if !BindJSONOrError(c, &p) {
		return
	}

	if p.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
			return
		}
		_, err = intconfig.DB.Exec(`
            UPDATE users SET name=?, username=?, email=?, phone=?, password_hash=?, role=?, status=?, updated_at=NOW()
            WHERE id=?
        `, p.Name, p.Username, p.Email, p.Phone, string(hash), p.Role, p.Status, id)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to update user", err)
			return
		}
	} else {
		_, err := intconfig.DB.Exec(`
            UPDATE users SET name=?, username=?, email=?, phone=?, role=?, status=?, updated_at=NOW()
            WHERE id=?
        `, p.Name, p.Username, p.Email, p.Phone, p.Role, p.Status, id)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to update user", err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}
	res, err := intconfig.DB.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete user", err)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		respondError(c, http.StatusNotFound, "not_found", "user not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
