package controllers

import (
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"mixtape/util"
	"net/http"
)

type SysInfo struct {
	Hostname string `json:"hostname"`
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
	Disk     string `json:"disk"`
}

// Heartbeat reports that the process is alive along with some host info.
func Heartbeat(ctx *fiber.Ctx) error {
	hostStat, err := host.Info()
	if err != nil {
		return util.ErrorResponse(ctx, http.StatusInternalServerError, err.Error())
	}

	cpuStat, _ := cpu.Info()
	cpuName := ""
	if len(cpuStat) > 0 {
		cpuName = cpuStat[0].Family
	}

	ram := ""
	if vmStatus, memErr := mem.VirtualMemory(); memErr == nil {
		ram = fmt.Sprintf("%dGB", vmStatus.Total/1024/1024/1024)
	}

	diskSize := ""
	if diskStat, diskErr := disk.Usage("/"); diskErr == nil {
		diskSize = fmt.Sprintf("%dGB", diskStat.Total/1024/1024/1024)
	}

	info := SysInfo{
		Hostname: hostStat.Hostname,
		CPU:      cpuName,
		Platform: hostStat.Platform,
		Disk:     diskSize,
		RAM:      ram,
	}

	return util.SuccessResponse(ctx, http.StatusOK, info)
}
