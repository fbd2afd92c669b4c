package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/renatoc1/leadtrack/internal/entity"
	"github.com/renatoc1/leadtrack/internal/usecase"
)

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "role", "department_id", "target_amount", "created_at", "updated_at",
	})
}

func TestFindEmployee(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE id = \$1`).
		WithArgs("emp-1").
		WillReturnRows(employeeRows().AddRow("emp-1", "Ana", "ana@leadtrack.app", "seller", "dept-1", 10.0, now, now))

	repo := NewEmployeeRepository(db)
	emp, err := repo.FindEmployee(context.Background(), "emp-1")

	assert.NoError(t, err)
	assert.Equal(t, "Ana", emp.Name)
	assert.NotNil(t, emp.TargetAmount)
	assert.Equal(t, 10.0, *emp.TargetAmount)
}

func TestFindEmployeeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE id = \$1`).
		WithArgs("fantasma").
		WillReturnRows(employeeRows())

	repo := NewEmployeeRepository(db)
	_, err = repo.FindEmployee(context.Background(), "fantasma")

	assert.ErrorIs(t, err, entity.ErrEmployeeNotFound)
}

// Departamento desconhecido devolve conjunto vazio, não erro.
func TestFindEmployeeIDsUnknownDepartment(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id FROM employees WHERE department_id = \$1`).
		WithArgs("dept-fantasma").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewEmployeeRepository(db)
	ids, err := repo.FindEmployeeIDs(context.Background(), "dept-fantasma")

	assert.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestFindEmployeeIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id FROM employees WHERE department_id = \$1`).
		WithArgs("dept-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("emp-1").AddRow("emp-2"))

	repo := NewEmployeeRepository(db)
	ids, err := repo.FindEmployeeIDs(context.Background(), "dept-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"emp-1", "emp-2"}, ids)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO employees`).
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewEmployeeRepository(db)
	_, err = repo.Create(context.Background(), usecase.CreateEmployeeInput{
		Name:         "Ana",
		Email:        "ana@leadtrack.app",
		Role:         "seller",
		DepartmentID: "dept-1",
	})

	assert.ErrorIs(t, err, entity.ErrEmployeeEmailExists)
}

func TestCreateEmployeeInvalidDepartment(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO employees`).
		WillReturnError(&pq.Error{Code: "23503"})

	repo := NewEmployeeRepository(db)
	_, err = repo.Create(context.Background(), usecase.CreateEmployeeInput{
		Name:         "Ana",
		Email:        "ana@leadtrack.app",
		Role:         "seller",
		DepartmentID: "dept-fantasma",
	})

	assert.ErrorIs(t, err, entity.ErrDepartmentNotFound)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`UPDATE employees`).
		WillReturnRows(employeeRows())

	repo := NewEmployeeRepository(db)
	_, err = repo.Update(context.Background(), "fantasma", usecase.UpdateEmployeeInput{
		Name:  "Ana",
		Email: "ana@leadtrack.app",
	})

	assert.ErrorIs(t, err, entity.ErrEmployeeNotFound)
}
