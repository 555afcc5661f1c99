package benchmark

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

type MemoryInfo struct {
	Total       uint64
	Available   uint64
	Used        uint64
	UsedPercent float64
	ProcessRSS  uint64
}

func GetMemoryInfo() (MemoryInfo, error) {

	v, err := mem.VirtualMemory()
	if err != nil {
		return MemoryInfo{}, fmt.Errorf("failed to get memory info: %v", err)
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return MemoryInfo{}, fmt.Errorf("failed to open current process: %v", err)
	}
	rss, err := proc.MemoryInfo()
	if err != nil {
		return MemoryInfo{}, fmt.Errorf("failed to get process memory: %v", err)
	}

	return MemoryInfo{
		Total:       v.Total,
		Available:   v.Available,
		Used:        v.Used,
		UsedPercent: v.UsedPercent,
		ProcessRSS:  rss.RSS,
	}, nil
}

func (mi MemoryInfo) String() string {
	return fmt.Sprintf("host used %.1f%% (%d/%d MiB), process rss %d MiB",
		mi.UsedPercent, mi.Used>>20, mi.Total>>20, mi.ProcessRSS>>20)
}
