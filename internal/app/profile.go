package app

import (
	"github.com/pkg/profile"

	"localign/internal/cli"
)

// startProfile honors --cpu-profile/--mem-profile. The returned stop is
// never nil.
func startProfile(c cli.Common) (stop func()) {
	opts := []func(*profile.Profile){
		profile.ProfilePath(c.ProfileDir),
		profile.NoShutdownHook,
	}
	if c.Quiet {
		opts = append(opts, profile.Quiet)
	}
	switch {
	case c.CPUProfile:
		return profile.Start(append(opts, profile.CPUProfile)...).Stop
	case c.MemProfile:
		return profile.Start(append(opts, profile.MemProfile)...).Stop
	}
	return func() {}
}
