package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/floor-assistant/pkg/config"
)

// Querier abstrae pgxpool.Pool, pgx.Conn y pgx.Tx para los repositorios de lectura.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Tables nombres calificados (y ya escapados) de las tres tablas del warehouse.
// El proyecto es la base de datos de la conexión; el dataset es el esquema.
type Tables struct {
	Stock    string
	Stores   string
	Products string
}

// NewTables califica las tablas como "proyecto"."dataset"."tabla". PostgreSQL rechaza
// un nombre de tres partes cuya base no sea la de la conexión, así que un proyecto que
// no coincide con la base conectada falla en la primera consulta en vez de leer otra.
// Solo los identificadores de configuración se interpolan en SQL; los valores del
// usuario van siempre como parámetros.
func NewTables(wh config.WarehouseConfig) Tables {
	qualify := func(table string) string {
		ident := pgx.Identifier{}
		if wh.Project != "" {
			ident = append(ident, wh.Project)
		}
		if wh.Dataset != "" {
			ident = append(ident, wh.Dataset)
		}
		return append(ident, table).Sanitize()
	}
	return Tables{
		Stock:    qualify("stock"),
		Stores:   qualify("stores"),
		Products: qualify("products"),
	}
}

// likePattern envuelve el valor con comodines para un LIKE de subcadena.
func likePattern(v string) string {
	return "%" + v + "%"
}
