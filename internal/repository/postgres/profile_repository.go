package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const profileColumns = `
	id, username, full_name, age, gender, preferred_gender, smoking,
	location, budget, move_in_date, cleanliness, personality, has_pets,
	religion, bio, created_at, updated_at`

// uniqueViolation is the postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			username, full_name, age, gender, preferred_gender, smoking,
			location, budget, move_in_date, cleanliness, personality, has_pets,
			religion, bio
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Username, profile.FullName, profile.Age, profile.Gender,
		profile.PreferredGender, profile.Smoking, profile.Location, profile.Budget,
		profile.MoveInDate, profile.Cleanliness, profile.Personality, profile.HasPets,
		profile.Religion, profile.Bio,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`
	err := r.db.GetContext(ctx, &profile, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetAll(ctx context.Context) ([]*domain.Profile, error) {
	profiles := []*domain.Profile{}
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY id`
	if err := r.db.SelectContext(ctx, &profiles, query); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET full_name = $1, age = $2, gender = $3, preferred_gender = $4,
		    smoking = $5, location = $6, budget = $7, move_in_date = $8,
		    cleanliness = $9, personality = $10, has_pets = $11,
		    religion = $12, bio = $13, updated_at = CURRENT_TIMESTAMP
		WHERE id = $14
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.FullName, profile.Age, profile.Gender, profile.PreferredGender,
		profile.Smoking, profile.Location, profile.Budget, profile.MoveInDate,
		profile.Cleanliness, profile.Personality, profile.HasPets,
		profile.Religion, profile.Bio,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}
