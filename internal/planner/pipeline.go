package planner

import (
	"github.com/rs/zerolog/log"

	"github.com/bandhitl/prod-plan/internal/calculator"
	"github.com/bandhitl/prod-plan/internal/config"
	"github.com/bandhitl/prod-plan/internal/model"
	"github.com/bandhitl/prod-plan/internal/parser"
)

// Run executes one full analysis over raw sheet rows: ingest both
// files, classify and aggregate, distribute targets to SKUs, compute
// metrics. Structural parse errors abort the run; per-brand conditions
// are collected as warnings next to whatever valid output exists.
// The pipeline is pure apart from diagnostic logging: identical inputs
// yield identical results.
func Run(historicalRows, targetRows [][]string, cfg *config.AppConfig) (*model.AnalysisResult, error) {
	records, histStats, err := parser.ParseHistorical(historicalRows)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("headerRow", histStats.HeaderRow).
		Int("kept", histStats.RowsKept).
		Int("dropped", histStats.RowsDropped).
		Msg("historical file ingested")

	targets, targetStats, err := parser.ParseTargets(targetRows, parser.TargetOptions{
		PeriodAToken: cfg.Parser.PeriodAToken,
		PeriodBToken: cfg.Parser.PeriodBToken,
	})
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("categories", targetStats.RowsKept).
		Bool("headerFallback", targetStats.UsedFallback).
		Msg("target file ingested")

	warnings := []model.Warning{}
	if targetStats.UsedFallback {
		warnings = append(warnings, model.Warning{
			Code:    model.WarnHeaderFallback,
			Message: "target header tokens not found; fell back to fixed column positions",
		})
	}

	brandTotals, shares := AggregateHistorical(records)

	brandTargets, err := AggregateTargets(targets, brandTotals)
	if err != nil {
		return nil, err
	}

	predictions, distWarnings := Distribute(brandTargets, shares, cfg.Planning.MinSkuShare)
	warnings = append(warnings, distWarnings...)

	calc := calculator.New(cfg.Planning)
	metrics, metricWarnings := calc.ComputeMetrics(brandTargets, predictions)
	warnings = append(warnings, metricWarnings...)

	return &model.AnalysisResult{
		Historical:   records,
		Targets:      targets,
		BrandTargets: brandTargets,
		SkuShares:    shares,
		Predictions:  predictions,
		Metrics:      metrics,
		Warnings:     warnings,
	}, nil
}
