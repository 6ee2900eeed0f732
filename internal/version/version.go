package version

// AppVersion is the release version stamped into builds.
var AppVersion = "0.1.0"
