// Package crate defines the data model for the crate layout engine.
//
// All geometry is expressed in inches as float64. The types here are plain
// records passed between the layout algorithms (sheet tiling, cleat
// placement, skid and floorboard planning) and the reconciliation engine;
// they carry no behavior beyond small accessors and validation.
//
// # Coordinate Conventions
//
// Panels live in their own 2D frame: x runs along the panel width from the
// left edge, y along the panel height from the bottom. Skid positions use a
// centered origin (x=0 at the crate centerline) because the downstream NX
// template models the crate symmetrically about its center.
//
// # Fixed Instance Capacities
//
// The downstream NX expression format pre-declares a fixed number of
// component instances per panel, so every layout is capped by the Max*
// constants. Internally collections are variable-length and hold only active
// components; the nx package pads to the fixed slot counts at the boundary.
package crate
