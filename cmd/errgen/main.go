package main

import (
	"os"

	"github.com/mailru/errgen/internal/pkg/ds"
)

// ldflags
var (
	Version     string
	BuildTime   string
	BuildOS     string
	BuildCommit string
)

func getAppInfo() *ds.AppInfo {
	return ds.NewAppInfo().
		WithVersion(Version).
		WithBuildTime(BuildTime).
		WithBuildOS(BuildOS).
		WithBuildCommit(BuildCommit)
}

func main() {
	os.Exit(Execute(os.Args[1:]))
}
