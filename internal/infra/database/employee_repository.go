package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/renatoc1/leadtrack/internal/entity"
	"github.com/renatoc1/leadtrack/internal/usecase"
)

type EmployeeRepository struct {
	DB *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id string) (*entity.Employee, error) {
	query := `
		SELECT id, name, email, role, department_id, target_amount, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp entity.Employee
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.Role,
		&emp.DepartmentID,
		&emp.TargetAmount,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrEmployeeNotFound
		}
		return nil, err
	}

	return &emp, nil
}

// FindEmployeeIDs devolve o conjunto de ids do departamento. Departamento
// desconhecido resulta em conjunto vazio, não em erro — quem decide o que
// fazer com isso é o resolvedor de filtro.
func (r *EmployeeRepository) FindEmployeeIDs(ctx context.Context, departmentID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id FROM employees WHERE department_id = $1`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *EmployeeRepository) Create(ctx context.Context, input usecase.CreateEmployeeInput) (*entity.Employee, error) {
	emp := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		TargetAmount: input.TargetAmount,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	query := `
		INSERT INTO employees (id, name, email, role, department_id, target_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		emp.Role,
		emp.DepartmentID,
		emp.TargetAmount,
		emp.CreatedAt,
		emp.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation (email)
				return nil, entity.ErrEmployeeEmailExists
			case "23503": // foreign_key_violation (department)
				return nil, entity.ErrDepartmentNotFound
			}
		}
		log.Printf("Erro crítico no banco: %v", err)
		return nil, err
	}

	return emp, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, id string, input usecase.UpdateEmployeeInput) (*entity.Employee, error) {
	query := `
		UPDATE employees
		SET name = $1,
			email = $2,
			role = COALESCE(NULLIF($3, ''), role),
			department_id = COALESCE(NULLIF($4, '')::uuid, department_id),
			target_amount = COALESCE($5, target_amount),
			updated_at = NOW()
		WHERE id = $6
		RETURNING id, name, email, role, department_id, target_amount, created_at, updated_at
	`

	var emp entity.Employee
	err := r.DB.QueryRowContext(ctx, query,
		input.Name,
		input.Email,
		input.Role,
		input.DepartmentID,
		input.TargetAmount,
		id,
	).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.Role,
		&emp.DepartmentID,
		&emp.TargetAmount,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrEmployeeNotFound
		}
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entity.ErrEmployeeEmailExists
		}
		return nil, err
	}

	return &emp, nil
}
