package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bloodlink/donor-service/internal/domain"
)

// EmergencyRepository encapsulates emergency request persistence.
type EmergencyRepository interface {
	Create(ctx context.Context, request *domain.EmergencyRequest) error
	GetByID(ctx context.Context, id string) (*domain.EmergencyRequest, error)
}

type emergencyRepository struct {
	pool *pgxpool.Pool
}

// NewEmergencyRepository returns a Postgres-backed implementation.
func NewEmergencyRepository(pool *pgxpool.Pool) EmergencyRepository {
	return &emergencyRepository{pool: pool}
}

func (r *emergencyRepository) Create(ctx context.Context, request *domain.EmergencyRequest) error {
	const query = `
        INSERT INTO emergency_requests (id, patient_name, contact_person, hospital, hospital_city, hospital_address, blood_type, units, urgency, contact_phone, message)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		request.ID,
		request.PatientName,
		request.ContactPerson,
		request.Hospital,
		request.HospitalCity,
		request.HospitalAddress,
		request.BloodType,
		request.Units,
		request.Urgency,
		request.ContactPhone,
		request.Message,
	).Scan(&request.CreatedAt)
}

func (r *emergencyRepository) GetByID(ctx context.Context, id string) (*domain.EmergencyRequest, error) {
	const query = `
        SELECT id, patient_name, contact_person, hospital, hospital_city, hospital_address,
               blood_type, units, urgency, contact_phone, message, created_at
        FROM emergency_requests WHERE id=$1`

	var request domain.EmergencyRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.PatientName,
		&request.ContactPerson,
		&request.Hospital,
		&request.HospitalCity,
		&request.HospitalAddress,
		&request.BloodType,
		&request.Units,
		&request.Urgency,
		&request.ContactPhone,
		&request.Message,
		&request.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}
