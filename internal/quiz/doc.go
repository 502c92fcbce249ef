// Package quiz implements the quiz session engine: theme selection with a
// shuffled question order, per-kind answer evaluation, scoring, and the
// transitions between the NoBank, ThemeSelection, InQuestion and Completed
// phases.
package quiz
