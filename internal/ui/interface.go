package ui

import "context"

type Interface interface {
	// Confirm pose une question fermée (o/n) et retourne la réponse.
	// Implémentation terminale : prompt bloquant sur stdin.
	Confirm(ctx context.Context, question string) (bool, error)

	// WaitForExit bloque jusqu'à ce qu'un signal d'annulation soit reçu via ctx (Ctrl+C).
	WaitForExit(ctx context.Context) error

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
