package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain/models"
)

type ListingRepository struct {
	DB *sql.DB
}

func (r ListingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const listingColumns = `id, title, COALESCE(description,''), price_per_night, max_guests, created_at, updated_at`

// List returns listings, optionally capped at a maximum nightly price.
// Ordering is newest-first and stable for a fixed data set.
func (r ListingRepository) List(filter models.ListingFilter) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings`
	var args []any
	if filter.MaxPrice != nil {
		query += ` WHERE price_per_night <= ?`
		args = append(args, *filter.MaxPrice)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Listing{}
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.PricePerNight, &l.MaxGuests, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r ListingRepository) GetByID(id int64) (models.Listing, error) {
	var l models.Listing
	err := r.db().QueryRow(`SELECT `+listingColumns+` FROM listings WHERE id=? LIMIT 1`, id).
		Scan(&l.ID, &l.Title, &l.Description, &l.PricePerNight, &l.MaxGuests, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// Create inserts the listing and returns the assigned id.
func (r ListingRepository) Create(l models.Listing) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO listings (title, description, price_per_night, max_guests)
		VALUES (?,?,?,?)`,
		l.Title, l.Description, l.PricePerNight, l.MaxGuests,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update applies present fields only.
func (r ListingRepository) Update(id int64, patch models.ListingUpdate) error {
	sets := []string{}
	args := []any{}
	if patch.Title != nil {
		sets = append(sets, "title=?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *patch.Description)
	}
	if patch.PricePerNight != nil {
		sets = append(sets, "price_per_night=?")
		args = append(args, *patch.PricePerNight)
	}
	if patch.MaxGuests != nil {
		sets = append(sets, "max_guests=?")
		args = append(args, *patch.MaxGuests)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE listings SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

func (r ListingRepository) Delete(id int64) (int64, error) {
	res, err := r.db().Exec(`DELETE FROM listings WHERE id=?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
