// Package quadlab is a small laboratory for numerical integration on
// adaptive, gradient-weighted partitions.
//
// 🚀 What is quadlab?
//
//	A pure-Go toolkit plus CLI that brings together:
//		• Partitions: gradient-weighted (adaptive) and uniform splits of [a,b]
//		• Estimators: rectangle (left/right/middle/random), trapezoid, Simpson
//		• Catalog: named integrands with exact antiderivatives
//		• Studies: MAE/MSE convergence series over growing cell counts
//		• Output: console tables, CSV and PNG figures
//
// ✨ Why quadlab?
//
//   - Explicit partitions – build once, estimate with every rule
//   - Deterministic when asked – inject the RNG of the random rule
//   - Errors, not panics – sentinel errors for every bad input
//   - Batteries for experiments – YAML config, cobra CLI, gonum plots
//
// Packages:
//
//	core/        — Func, Interval, Cell, Partition, sentinel errors, validators
//	partition/   — Adaptive and Uniform partitioners
//	quadrature/  — Rule, Rectangle, Trapezoid, Simpson, Estimate
//	catalog/     — test integrands with closed-form integrals
//	convergence/ — error series over cell counts
//	report/      — tablewriter tables and CSV export
//	render/      — gonum/plot figures
//	config/      — YAML experiment files
//	lab/         — experiment runner used by the CLI
//	cli/, cmd/quadlab — command-line entry point
//
// Quick ASCII example (2^x on [0,1], n = 4, adaptive):
//
//	0.00    0.32     0.58    0.81   1.00
//	 |-------|--------|-------|------|
//
// cells narrow where 2^x grows fastest.
//
//	go install github.com/katalvlaran/quadlab/cmd/quadlab@latest
//	quadlab all -o out
package quadlab
