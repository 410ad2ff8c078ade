package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobHistory_AddResultKeepsBoundedWindow(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < historyLimit+20; i++ {
		h.AddResult(JobResult{JobName: fmt.Sprintf("run-%d", i), Success: true})
	}

	assert.Len(t, h.Results, historyLimit)
	assert.Equal(t, fmt.Sprintf("run-%d", historyLimit+19), h.Results[len(h.Results)-1].JobName)
}

func TestJobHistory_Latest(t *testing.T) {
	h := &JobHistory{}
	assert.Nil(t, h.Latest())

	h.AddResult(JobResult{JobName: "pipeline-run", StartTime: time.Now(), Success: true})
	h.AddResult(JobResult{JobName: "pipeline-run", StartTime: time.Now(), Success: false, Error: "boom"})

	latest := h.Latest()
	require.NotNil(t, latest)
	assert.False(t, latest.Success)
	assert.Equal(t, "boom", latest.Error)
}

func TestJobHistory_SuccessRate(t *testing.T) {
	h := &JobHistory{}
	assert.Zero(t, h.SuccessRate())

	h.AddResult(JobResult{Success: true})
	h.AddResult(JobResult{Success: true})
	h.AddResult(JobResult{Success: false})

	assert.InDelta(t, 2.0/3.0, h.SuccessRate(), 1e-9)
}
