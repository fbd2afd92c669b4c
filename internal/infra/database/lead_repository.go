package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/renatoc1/leadtrack/internal/entity"
	"github.com/renatoc1/leadtrack/internal/usecase"
)

const leadColumns = `id, name, email, company, phone, city, designation, message,
	status, sold_amount, call_back_time, employee_id, created_at`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// FindLeads executa o filtro resolvido. A ordenação createdAt desc é a
// ordem-base que o motor de agregação espera.
func (r *LeadRepository) FindLeads(ctx context.Context, filter usecase.ResolvedFilter) ([]entity.Lead, error) {
	query := fmt.Sprintf("SELECT %s FROM leads", leadColumns)

	var (
		where []string
		args  []interface{}
	)

	if filter.Start != nil {
		args = append(args, *filter.Start)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		where = append(where, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if len(filter.EmployeeIDs) > 0 {
		args = append(args, pq.Array(filter.EmployeeIDs))
		where = append(where, fmt.Sprintf("employee_id = ANY($%d)", len(args)))
	}

	for i, clause := range where {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Erro crítico no banco: %v", err)
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		if err := scanLead(rows, &lead); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

// CreateLeads grava o lote normalizado numa única transação via COPY.
// Tudo ou nada: qualquer falha desfaz o lote inteiro.
func (r *LeadRepository) CreateLeads(ctx context.Context, batch []usecase.NormalizedLead) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("leads",
		"id", "name", "email", "company", "phone", "city", "designation",
		"message", "status", "call_back_time", "employee_id", "created_at",
	))
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	for _, lead := range batch {
		_, err = stmt.ExecContext(ctx,
			uuid.New().String(),
			lead.Name,
			lead.Email,
			lead.Company,
			lead.Phone,
			lead.City,
			lead.Designation,
			lead.Message,
			string(lead.Status),
			lead.CallBackTime,
			lead.EmployeeID,
			now,
		)
		if err != nil {
			return 0, err
		}
	}

	// Flush do COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, err
	}
	if err := stmt.Close(); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return int64(len(batch)), nil
}

// UpdateLead aplica só os campos presentes. Status e valor vendido são os
// campos que de fato mudam depois da criação.
func (r *LeadRepository) UpdateLead(ctx context.Context, id string, input usecase.UpdateLeadInput) (*entity.Lead, error) {
	var (
		sets []string
		args []interface{}
	)

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.Name != nil {
		set("name", *input.Name)
	}
	if input.Email != nil {
		set("email", *input.Email)
	}
	if input.Company != nil {
		set("company", *input.Company)
	}
	if input.Phone != nil {
		set("phone", *input.Phone)
	}
	if input.City != nil {
		set("city", *input.City)
	}
	if input.Designation != nil {
		set("designation", *input.Designation)
	}
	if input.Message != nil {
		set("message", *input.Message)
	}
	if input.Status != nil {
		set("status", string(*input.Status))
	}
	if input.SoldAmount != nil {
		set("sold_amount", *input.SoldAmount)
	}
	if input.CallBackTime != nil {
		set("call_back_time", *input.CallBackTime)
	}

	if len(sets) == 0 {
		return r.findByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE leads SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), leadColumns)

	var lead entity.Lead
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := scanLead(row, &lead); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	return &lead, nil
}

func (r *LeadRepository) DeleteLead(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

// SoldStats conta e soma apenas leads SOLD; sold_amount nulo fica de fora
// da soma (SUM ignora NULL).
func (r *LeadRepository) SoldStats(ctx context.Context, employeeIDs []string) (int64, float64, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(sold_amount), 0) FROM leads WHERE status = 'SOLD'`
	var args []interface{}

	if len(employeeIDs) > 0 {
		query += " AND employee_id = ANY($1)"
		args = append(args, pq.Array(employeeIDs))
	}

	var (
		count  int64
		amount float64
	)
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count, &amount); err != nil {
		return 0, 0, err
	}

	return count, amount, nil
}

func (r *LeadRepository) findByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := fmt.Sprintf("SELECT %s FROM leads WHERE id = $1", leadColumns)

	var lead entity.Lead
	row := r.DB.QueryRowContext(ctx, query, id)
	if err := scanLead(row, &lead); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	return &lead, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner, lead *entity.Lead) error {
	return row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Company,
		&lead.Phone,
		&lead.City,
		&lead.Designation,
		&lead.Message,
		&lead.Status,
		&lead.SoldAmount,
		&lead.CallBackTime,
		&lead.EmployeeID,
		&lead.CreatedAt,
	)
}
