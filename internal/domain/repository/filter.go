package repository

import "time"

// ListFilter filtros comunes de listado. CompanyIDs ya viene resuelto por el guard de acceso.
type ListFilter struct {
	CompanyIDs []string
	Status     string // status, stage o type según el recurso
	Type       string
	From       *time.Time
	To         *time.Time
	Search     string // subcadena case-insensitive sobre las columnas de texto
	Limit      int    // 0 = sin paginar
	Offset     int
}
