package services

import "errors"

var (
	// ErrInvalidShape is returned when the imported table is not a two-column
	// (número, tipo) record set.
	ErrInvalidShape      = errors.New("formato inválido: se esperan dos columnas (número, tipo)")
	ErrInvalidLayout     = errors.New("configuración de rack inválida")
	ErrUnknownPolicy     = errors.New("política de ubicación desconocida")
	ErrInvalidRecord     = errors.New("comprobante inválido")
	ErrUnsupportedFormat = errors.New("formato de archivo no soportado")
	ErrSessionNotFound   = errors.New("sesión no encontrada o expirada")
)
