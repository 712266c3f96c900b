package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id, listing_id, user_id,
	DATE_FORMAT(start_date, '%Y-%m-%d'), DATE_FORMAT(end_date, '%Y-%m-%d'),
	status, created_at`

// List returns bookings, optionally restricted to one listing.
func (r BookingRepository) List(filter models.BookingFilter) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	var args []any
	if filter.ListingID != nil {
		query += ` WHERE listing_id=?`
		args = append(args, *filter.ListingID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.ListingID, &b.UserID, &b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	return r.getByID(r.db(), id)
}

// GetByIDTx reads the booking through q so updates can re-check rules
// against the row inside their own transaction.
func (r BookingRepository) GetByIDTx(q DBTX, id int64) (models.Booking, error) {
	return r.getByID(q, id)
}

func (r BookingRepository) getByID(q DBTX, id int64) (models.Booking, error) {
	var b models.Booking
	err := q.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id).
		Scan(&b.ID, &b.ListingID, &b.UserID, &b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt)
	return b, err
}

// CountOverlapping counts pending/confirmed bookings of a listing whose
// half-open [start_date, end_date) range intersects [start, end).
// excludeID skips the booking's own row during updates; pass 0 on create.
func (r BookingRepository) CountOverlapping(q DBTX, listingID int64, start, end string, excludeID int64) (int, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE listing_id=?
		  AND status IN ('pending','confirmed')
		  AND start_date < ?
		  AND end_date > ?`
	args := []any{listingID, end, start}
	if excludeID > 0 {
		query += ` AND id<>?`
		args = append(args, excludeID)
	}

	var n int
	if err := q.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CreateTx inserts the booking through q and returns the assigned id.
func (r BookingRepository) CreateTx(q DBTX, b models.Booking) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO bookings (listing_id, user_id, start_date, end_date, status)
		VALUES (?,?,?,?,?)`,
		b.ListingID, b.UserID, b.StartDate, b.EndDate, b.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateTx applies present fields only, through q.
func (r BookingRepository) UpdateTx(q DBTX, id int64, patch models.BookingUpdate) error {
	sets := []string{}
	args := []any{}
	if patch.StartDate != nil {
		sets = append(sets, "start_date=?")
		args = append(args, *patch.StartDate)
	}
	if patch.EndDate != nil {
		sets = append(sets, "end_date=?")
		args = append(args, *patch.EndDate)
	}
	if patch.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, *patch.Status)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := q.Exec(`UPDATE bookings SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

func (r BookingRepository) Delete(id int64) (int64, error) {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
