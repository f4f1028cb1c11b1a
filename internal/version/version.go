package version

// Version is the semantic version of this build.
const Version = "0.2.0"
