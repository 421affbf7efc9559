package models

// AppBuildInfo is the version triple stamped into the safeshare and
// blob-server binaries through -ldflags. It is printed by `safeshare
// version` and served by the blob server on /api/version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// Empty reports whether no build metadata was injected at link time.
func (a AppBuildInfo) Empty() bool {
	return a.buildVersion == "" && a.buildDate == "" && a.buildCommit == ""
}
