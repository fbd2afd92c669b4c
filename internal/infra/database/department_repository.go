package database

import (
	"context"
	"database/sql"

	"github.com/renatoc1/leadtrack/internal/usecase"
)

type DepartmentRepository struct {
	DB *sql.DB
}

func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

// FindSummaries agrega por departamento os números de todos os membros.
// A meta vem da tabela targets (um registro por departamento, opcional).
func (r *DepartmentRepository) FindSummaries(ctx context.Context) ([]usecase.DepartmentSummary, error) {
	query := `
		SELECT
			d.id,
			d.name,
			t.amount,
			COUNT(l.id) AS total_leads,
			COUNT(l.id) FILTER (WHERE l.status = 'SOLD') AS sold_leads,
			COALESCE(SUM(l.sold_amount) FILTER (WHERE l.status = 'SOLD'), 0) AS sold_amount
		FROM departments d
		LEFT JOIN targets t ON t.department_id = d.id
		LEFT JOIN employees e ON e.department_id = d.id
		LEFT JOIN leads l ON l.employee_id = e.id
		GROUP BY d.id, d.name, t.amount
		ORDER BY d.name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []usecase.DepartmentSummary{}
	for rows.Next() {
		var s usecase.DepartmentSummary
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Target,
			&s.TotalLeads,
			&s.SoldLeads,
			&s.SoldAmount,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
