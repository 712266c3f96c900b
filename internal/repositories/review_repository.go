package repositories

import (
	"database/sql"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r ReviewRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ReviewRepository) Create(rev models.Review) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO reviews (listing_id, user_id, rating, comment)
		VALUES (?,?,?,?)`,
		rev.ListingID, rev.UserID, rev.Rating, rev.Comment,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ReviewRepository) GetByID(id int64) (models.Review, error) {
	var rev models.Review
	err := r.db().QueryRow(`
		SELECT id, listing_id, user_id, rating, COALESCE(comment,''), created_at
		FROM reviews WHERE id=? LIMIT 1`, id).
		Scan(&rev.ID, &rev.ListingID, &rev.UserID, &rev.Rating, &rev.Comment, &rev.CreatedAt)
	return rev, err
}

func (r ReviewRepository) ListByListingID(listingID int64) ([]models.Review, error) {
	rows, err := r.db().Query(`
		SELECT id, listing_id, user_id, rating, COALESCE(comment,''), created_at
		FROM reviews WHERE listing_id=?
		ORDER BY created_at DESC, id DESC`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Review{}
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.ListingID, &rev.UserID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
