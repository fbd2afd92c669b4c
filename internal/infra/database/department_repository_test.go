package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFindSummaries(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "amount", "total_leads", "sold_leads", "sold_amount"}).
		AddRow("d1", "Expansão", nil, 10, 2, 700.0).
		AddRow("d2", "Vendas", 30.0, 50, 12, 8000.0)

	mock.ExpectQuery(`SELECT (.+) FROM departments d (.+) GROUP BY d.id, d.name, t.amount ORDER BY d.name`).
		WillReturnRows(rows)

	repo := NewDepartmentRepository(db)
	summaries, err := repo.FindSummaries(context.Background())

	assert.NoError(t, err)
	assert.Len(t, summaries, 2)

	// Meta é opcional: sem registro em targets o campo fica nulo.
	assert.Nil(t, summaries[0].Target)
	assert.Equal(t, int64(10), summaries[0].TotalLeads)

	assert.NotNil(t, summaries[1].Target)
	assert.Equal(t, 30.0, *summaries[1].Target)
	assert.Equal(t, 8000.0, summaries[1].SoldAmount)
}

func TestFindSummariesEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM departments d`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "amount", "total_leads", "sold_leads", "sold_amount"}))

	repo := NewDepartmentRepository(db)
	summaries, err := repo.FindSummaries(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}
