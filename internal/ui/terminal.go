package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

// Confirm affiche la question et attend une réponse o/n (Entrée = oui).
func (t *terminalUI) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		fmt.Printf("%s [O/n] : ", question)
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("lecture stdin: %w", err)
		}
		switch strings.TrimSpace(strings.ToLower(input)) {
		case "", "o", "oui", "y", "yes":
			return true, nil
		case "n", "non", "no":
			return false, nil
		default:
			fmt.Println("❌ Réponse invalide. Essayez à nouveau.")
		}
	}
}

func (t *terminalUI) WaitForExit(ctx context.Context) error {
	fmt.Println("\n\nAppuyez sur Ctrl+C pour quitter.")

	// Prépare le canal pour les signaux d'interruption
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done(): // Context annulé ailleurs
		return ctx.Err()
	case <-sigCh: // Reçu Ctrl+C (SIGINT ou SIGTERM)
		return nil
	}
}

func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}
