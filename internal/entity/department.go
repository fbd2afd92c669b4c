package entity

import "errors"

// Departamento agrupa funcionários para filtro e meta. A visão gerencial
// (nome, meta, totais) é derivada por consulta, não materializada aqui.
var ErrDepartmentNotFound = errors.New("departamento não encontrado")
