package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ServerStats is a point-in-time view of server load.
type ServerStats struct {
	Sessions   int64
	CPUPercent float64
	MemPercent float64
}

// Stats samples the active session count and host load.
// Host figures are left at zero when the platform cannot report them.
func (s *SSHServer) Stats(ctx context.Context) ServerStats {
	st := ServerStats{Sessions: s.sessions.Load()}
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pct) > 0 {
		st.CPUPercent = pct[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		st.MemPercent = vm.UsedPercent
	}
	return st
}

// reportStats logs server load every interval until ctx is done.
func (s *SSHServer) reportStats(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			st := s.Stats(ctx)
			s.logger.Info("server stats",
				"sessions", st.Sessions,
				"cpu", fmtPercent(st.CPUPercent),
				"mem", fmtPercent(st.MemPercent),
			)
		}
	}
}

func fmtPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
