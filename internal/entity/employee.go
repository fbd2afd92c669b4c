package entity

import (
	"errors"
	"time"
)

var (
	ErrEmployeeNotFound    = errors.New("funcionário não encontrado")
	ErrEmployeeEmailExists = errors.New("já existe um funcionário com este email")
)

type Employee struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role,omitempty"`
	DepartmentID string    `json:"department_id"`
	TargetAmount *float64  `json:"target_amount"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
