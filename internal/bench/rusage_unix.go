//go:build linux || darwin || freebsd || netbsd || openbsd

package bench

import (
	"os"
	"runtime"
	"syscall"
)

// maxRSS reads the child's peak RSS in bytes. Darwin reports bytes, the
// other unixes kilobytes.
func maxRSS(ps *os.ProcessState) uint64 {
	ru, ok := ps.SysUsage().(*syscall.Rusage)
	if !ok || ru == nil || ru.Maxrss <= 0 {
		return 0
	}
	if runtime.GOOS == "darwin" {
		return uint64(ru.Maxrss)
	}
	return uint64(ru.Maxrss) * 1024
}
