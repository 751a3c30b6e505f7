package constants

// File Names
const (
	ConfigDirName  = "shellconf"
	ConfigFileName = "config.toml"
)

// Suffixes
const (
	BackupSuffix = ".bak"
	LockSuffix   = ".lock"
)
