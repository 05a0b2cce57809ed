package provider

import "github.com/shirou/gopsutil/v3/cpu"

// allBusy returns total and busy time for a CPU times sample.
// Guest and GuestNice are already counted in User on Linux and are left out.
func allBusy(t cpu.TimesStat) (total, busy float64) {
	total = t.User + t.System + t.Idle + t.Nice + t.Iowait + t.Irq + t.Softirq + t.Steal
	busy = total - t.Idle - t.Iowait
	return total, busy
}

// busyPercent computes utilization between two samples of the same CPU.
func busyPercent(prev, cur cpu.TimesStat) float64 {
	prevTotal, prevBusy := allBusy(prev)
	curTotal, curBusy := allBusy(cur)

	if curBusy <= prevBusy {
		return 0
	}
	if curTotal <= prevTotal {
		return 100
	}
	pct := (curBusy - prevBusy) / (curTotal - prevTotal) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
