// Package pkg provides the core libraries for AutoCrate crate generation.
//
// # Overview
//
// AutoCrate sizes a structural shipping crate around a product and emits the
// layout as CAD-ready output. The pkg directory is organized into four main
// areas:
//
//  1. [crate] - Domain logic (envelope reconciliation, tiling, cleats, base)
//  2. [nx], [render], [report] - Serialization (NX expressions, SVG, PDF/XLSX)
//  3. [pipeline] - Orchestration (validate → compute → serialize)
//  4. [config], [errors], [observability], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through AutoCrate:
//
//	Product dimensions + constants
//	         ↓
//	    [crate/reconcile] package (fixed-point envelope reconciliation)
//	         ↓
//	    [crate/sheet], [crate/cleat], [crate/skid], [crate/floorboard]
//	         ↓
//	    [nx]/[render]/[report] output (exp, SVG, PDF, XLSX, JSON)
//
// # Quick Start
//
// Compute a layout and write the NX expression file:
//
//	import (
//	    "context"
//	    "github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Params:  params,
//	    Formats: []string{"exp"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("crate.exp", result.Artifacts["exp"], 0o644)
package pkg
