package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

func testParams() crate.Params {
	return crate.Params{
		ProductLength:       90,
		ProductWidth:        45,
		ProductHeight:       30,
		ProductWeight:       1200,
		ClearanceSide:       2,
		ClearanceAbove:      1.5,
		GroundClearance:     3,
		SheathingThickness:  0.25,
		CleatThickness:      0.75,
		CleatMemberWidth:    3.5,
		FloorboardThickness: 1.5,
		LumberWidths:        []float64{11.25, 9.25, 7.25, 5.5},
		MinCustomWidth:      2.5,
		MaxMiddleGap:        0.25,
	}
}

func TestExecuteDefaultsToExp(t *testing.T) {
	runner := NewRunner(nil, nil)
	result, err := runner.Execute(context.Background(), Options{Params: testParams()})
	require.NoError(t, err)

	require.Contains(t, result.Artifacts, FormatExp)
	exp := string(result.Artifacts[FormatExp])
	assert.Contains(t, exp, "OVERALL_WIDTH")
	assert.Equal(t, result.Crate.Passes, result.Stats.Passes)
}

func TestExecuteAllFormats(t *testing.T) {
	runner := NewRunner(nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		Params:  testParams(),
		Formats: []string{FormatExp, FormatJSON, FormatSVG, FormatPDF, FormatXLSX},
	})
	require.NoError(t, err)

	assert.Contains(t, result.Artifacts, FormatExp)
	assert.Contains(t, result.Artifacts, FormatPDF)
	assert.Contains(t, result.Artifacts, FormatXLSX)

	for _, name := range reconcile.PanelNames {
		key := "svg-" + string(name)
		require.Contains(t, result.Artifacts, key)
		assert.True(t, strings.HasPrefix(string(result.Artifacts[key]), "<svg"))
	}

	var decoded reconcile.Result
	require.NoError(t, json.Unmarshal(result.Artifacts[FormatJSON], &decoded))
	assert.InDelta(t, result.Crate.Envelope.Width, decoded.Envelope.Width, 1e-9)

	assert.True(t, strings.HasPrefix(string(result.Artifacts[FormatPDF]), "%PDF-"))
}

func TestExecuteRejectsBadFormat(t *testing.T) {
	runner := NewRunner(nil, nil)
	_, err := runner.Execute(context.Background(), Options{
		Params:  testParams(),
		Formats: []string{"docx"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestExecuteRejectsBadParams(t *testing.T) {
	p := testParams()
	p.ProductWidth = -1

	runner := NewRunner(nil, nil)
	_, err := runner.Execute(context.Background(), Options{Params: p})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestComputeHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(nil, nil)
	_, err := runner.Compute(ctx, Options{Params: testParams()})
	require.Error(t, err)
}

func TestRenderArtifactsStandalone(t *testing.T) {
	runner := NewRunner(nil, nil)
	opts := Options{Params: testParams()}
	res, err := runner.Compute(context.Background(), opts)
	require.NoError(t, err)

	opts.Formats = []string{FormatJSON}
	artifacts, err := runner.RenderArtifacts(res, opts)
	require.NoError(t, err)
	assert.Len(t, artifacts, 1)
	assert.Contains(t, artifacts, FormatJSON)
}

func TestOptionsWants(t *testing.T) {
	o := Options{Formats: []string{FormatExp, FormatSVG}}
	assert.True(t, o.Wants(FormatSVG))
	assert.False(t, o.Wants(FormatPDF))
}
