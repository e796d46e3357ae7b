package supervisor

// Version is the current version of the go-supervisor library
const Version = "1.0.0"

// VersionInfo contains detailed version information
type VersionInfo struct {
	// Version is the semantic version
	Version string
	// Protocol is the wire protocol spoken to supervisord
	Protocol string
	// APIVersion is the supervisord RPC API version the wrappers were written against
	APIVersion string
}

// GetVersion returns the current version information
func GetVersion() VersionInfo {
	return VersionInfo{
		Version:    Version,
		Protocol:   "xml-rpc",
		APIVersion: "3.0",
	}
}

// userAgent is sent with every request
const userAgent = "go-supervisor/" + Version
