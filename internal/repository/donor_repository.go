package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bloodlink/donor-service/internal/domain"
)

// Sentinel errors surfaced when the donors table rejects an insert on a
// uniqueness constraint. Duplicate detection relies on the constraint, not a
// prior existence check, so concurrent registrations cannot race past it.
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePhone = errors.New("phone already registered")
	ErrDuplicateDonor = errors.New("donor already registered")
)

const uniqueViolationCode = "23505"

// DonorFilter captures donor lookup parameters. Empty fields mean no filter.
type DonorFilter struct {
	BloodType string
	City      string
}

// DonorRepository defines persistence access for donors.
type DonorRepository interface {
	Create(ctx context.Context, donor *domain.Donor) error
	List(ctx context.Context, filter DonorFilter) ([]domain.Donor, error)
	GetByID(ctx context.Context, id int64) (*domain.Donor, error)
	CountAvailable(ctx context.Context) (int64, error)
}

type donorRepository struct {
	pool *pgxpool.Pool
}

// NewDonorRepository returns a Postgres-backed implementation.
func NewDonorRepository(pool *pgxpool.Pool) DonorRepository {
	return &donorRepository{pool: pool}
}

func (r *donorRepository) Create(ctx context.Context, donor *domain.Donor) error {
	const query = `
        INSERT INTO donors (full_name, email, phone, age, blood_type, gender, address, city, state, pincode, last_donation, available)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, registration_date`

	err := r.pool.QueryRow(ctx, query,
		donor.FullName,
		donor.Email,
		donor.Phone,
		donor.Age,
		donor.BloodType,
		donor.Gender,
		donor.Address,
		donor.City,
		donor.State,
		donor.Pincode,
		donor.LastDonation,
		donor.Available,
	).Scan(&donor.ID, &donor.RegisteredAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			switch pgErr.ConstraintName {
			case "donors_email_key":
				return ErrDuplicateEmail
			case "donors_phone_key":
				return ErrDuplicatePhone
			}
			return ErrDuplicateDonor
		}
		return err
	}
	return nil
}

func (r *donorRepository) GetByID(ctx context.Context, id int64) (*domain.Donor, error) {
	const query = `
        SELECT id, full_name, email, phone, age, blood_type, gender, address, city, state, pincode,
               last_donation, available, registration_date
        FROM donors WHERE id=$1`

	var donor domain.Donor
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&donor.ID,
		&donor.FullName,
		&donor.Email,
		&donor.Phone,
		&donor.Age,
		&donor.BloodType,
		&donor.Gender,
		&donor.Address,
		&donor.City,
		&donor.State,
		&donor.Pincode,
		&donor.LastDonation,
		&donor.Available,
		&donor.RegisteredAt,
	); err != nil {
		return nil, err
	}
	return &donor, nil
}

// List returns donors matching the filter, most recently registered first.
// Blood type matches exactly; city matches as a case-insensitive substring.
func (r *donorRepository) List(ctx context.Context, filter DonorFilter) ([]domain.Donor, error) {
	base := `SELECT id, full_name, email, phone, age, blood_type, gender, address, city, state, pincode,
                    last_donation, available, registration_date
             FROM donors`
	clauses := []string{"1=1"}
	args := []any{}

	if strings.TrimSpace(filter.BloodType) != "" {
		args = append(args, strings.TrimSpace(filter.BloodType))
		clauses = append(clauses, fmt.Sprintf("blood_type=$%d", len(args)))
	}
	if strings.TrimSpace(filter.City) != "" {
		args = append(args, "%"+strings.TrimSpace(filter.City)+"%")
		clauses = append(clauses, fmt.Sprintf("city ILIKE $%d", len(args)))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY registration_date DESC, id DESC`,
		base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDonors(rows)
}

func (r *donorRepository) CountAvailable(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM donors WHERE available`

	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanDonors(rows pgx.Rows) ([]domain.Donor, error) {
	var result []domain.Donor
	for rows.Next() {
		var donor domain.Donor
		if err := rows.Scan(
			&donor.ID,
			&donor.FullName,
			&donor.Email,
			&donor.Phone,
			&donor.Age,
			&donor.BloodType,
			&donor.Gender,
			&donor.Address,
			&donor.City,
			&donor.State,
			&donor.Pincode,
			&donor.LastDonation,
			&donor.Available,
			&donor.RegisteredAt,
		); err != nil {
			return nil, err
		}
		result = append(result, donor)
	}
	return result, rows.Err()
}
