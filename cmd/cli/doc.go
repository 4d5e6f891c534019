// Package cli builds the find-commit command-line interface. It wires the
// Cobra root command to the layered configuration loader, the zap logger,
// the alias store, the commit locator backends, and the presenter.
package cli
