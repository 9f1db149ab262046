//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package bench

import "os"

func maxRSS(*os.ProcessState) uint64 { return 0 }
