// Package procutil finds running processes by executable name on every
// platform gopsutil supports.
//
// It wraps github.com/shirou/gopsutil/v4/process, which queries the native
// process table (the Windows process API, /proc on Linux, sysctl on macOS and
// the BSDs).
//
// # Example Usage
//
//	procs, err := procutil.FindByName(ctx, "ShareX.exe")
//	if err != nil {
//	    return err
//	}
//	for _, p := range procs {
//	    fmt.Println(p.PID, p.Exe)
//	}
package procutil
