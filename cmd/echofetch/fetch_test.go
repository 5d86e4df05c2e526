package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgoodale/echo-mod09ga/pkg/granule"
)

func resetFilterFlags() {
	startDate = ""
	endDate = ""
	yearRange = ""
	doyRange = ""
}

func TestBuildFilterPlanSelectsYearDOY(t *testing.T) {
	resetFilterFlags()
	defer resetFilterFlags()

	yearRange = "2013-2013"
	doyRange = "50-150"
	// Date bounds are ignored when both range flags are present
	startDate = "20130101"

	plan, err := buildFilterPlan()
	require.NoError(t, err)

	assert.True(t, plan.useYearDOY)
	assert.Equal(t, granule.Range{Min: 2013, Max: 2013}, plan.years)
	assert.Equal(t, granule.Range{Min: 50, Max: 150}, plan.doys)
	assert.Nil(t, plan.start)
}

func TestBuildFilterPlanDateRange(t *testing.T) {
	resetFilterFlags()
	defer resetFilterFlags()

	startDate = "20130101"
	endDate = "20130615"

	plan, err := buildFilterPlan()
	require.NoError(t, err)

	assert.False(t, plan.useYearDOY)
	require.NotNil(t, plan.start)
	require.NotNil(t, plan.end)
	assert.Equal(t, time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC), *plan.start)
	assert.Equal(t, time.Date(2013, 6, 15, 0, 0, 0, 0, time.UTC), *plan.end)
}

func TestBuildFilterPlanOnlyOneRangeFlagFallsBackToDates(t *testing.T) {
	resetFilterFlags()
	defer resetFilterFlags()

	// A year range alone does not trigger year+DOY filtering
	yearRange = "2013"

	plan, err := buildFilterPlan()
	require.NoError(t, err)
	assert.False(t, plan.useYearDOY)
	assert.Nil(t, plan.start)
	assert.Nil(t, plan.end)
}

func TestBuildFilterPlanRejectsBadInput(t *testing.T) {
	resetFilterFlags()
	defer resetFilterFlags()

	startDate = "January 1st"
	_, err := buildFilterPlan()
	assert.Error(t, err)

	resetFilterFlags()
	yearRange = "20x0-2005"
	doyRange = "150-300"
	_, err = buildFilterPlan()
	assert.Error(t, err)
}

func TestFilterPlanApply(t *testing.T) {
	resetFilterFlags()
	defer resetFilterFlags()

	urls := []string{
		"http://e4ftl01.cr.usgs.gov/MOLT/MOD09GA.005/2013.02.19/MOD09GA.A2013050.h09v05.005.x.hdf",
		"http://e4ftl01.cr.usgs.gov/MOLT/MOD09GA.005/2012.04.09/MOD09GA.A2012100.h09v05.005.x.hdf",
	}

	yearRange = "2013"
	doyRange = "50"
	plan, err := buildFilterPlan()
	require.NoError(t, err)

	filtered, err := plan.apply(urls)
	require.NoError(t, err)
	assert.Equal(t, urls[:1], filtered)
}
