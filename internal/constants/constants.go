package constants

// Hub layout
const (
	BareRepoSuffix     = ".git"
	DefaultHubDirName  = ".local-git-hub"
	MaxRepoNameLength  = 255
	HubDirPermissions  = 0755
	AppName            = "localhub"
	ConfigDirName      = "localhub"
	EnvironmentPrefix  = "LOCALHUB"
	ConfigFileBaseName = "config"
)

// Remote names
const (
	DefaultHubRemote  = "local-hub"
	DefaultPushRemote = "origin"
)

// Suffix appended to a remote name when listing its secondary push URL
const PushEntrySuffix = " (push)"

// Display
const (
	TimeLayout   = "2006-01-02 15:04:05"
	NotAvailable = "N/A"
)
