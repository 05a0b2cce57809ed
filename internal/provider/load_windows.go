//go:build windows

package provider

import "context"

// LoadAverage returns zeros on Windows. gopsutil estimates Windows load from a
// background sampler that must run for minutes, which a single-shot snapshot
// cannot provide.
func LoadAverage(ctx context.Context) LoadAvg {
	return LoadAvg{}
}
