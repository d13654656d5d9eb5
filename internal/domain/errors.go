package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnknownTool        = errors.New("herramienta desconocida")
	ErrToolRoundsExceeded = errors.New("se excedió el número máximo de rondas de herramientas")
	ErrAIUnavailable      = errors.New("servicio de IA no configurado")
)
