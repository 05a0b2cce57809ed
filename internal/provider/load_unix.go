//go:build !windows

package provider

import (
	"context"

	"github.com/shirou/gopsutil/v3/load"
)

// LoadAverage reads the system-wide load averages. It is not tied to any
// provider handle. Platforms without load averages yield zeros.
func LoadAverage(ctx context.Context) LoadAvg {
	avg, err := load.AvgWithContext(ctx)
	if err != nil || avg == nil {
		return LoadAvg{}
	}
	return LoadAvg{
		One:     avg.Load1,
		Five:    avg.Load5,
		Fifteen: avg.Load15,
	}
}
