// Package ui renders find-commit results for people.
//
// Presenter turns dispatch outcomes and typed errors into colored console text,
// while ConsoleCommandEventLogger narrates git invocations through zap so that
// diagnostic output stays separate from results.
package ui
