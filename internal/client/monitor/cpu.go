package monitor

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
)

// cpuPercent is a test seam for gopsutil.
var cpuPercent = cpu.PercentWithContext

// sampleCPU returns the overall CPU utilization since the previous call,
// as a percentage. The zero interval makes the call non-blocking.
func sampleCPU(ctx context.Context) (float64, error) {
	values, err := cpuPercent(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("no cpu readings")
	}
	return values[0], nil
}
