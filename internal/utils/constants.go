package utils

const (
	// ApplicationName is the binary and command name.
	ApplicationName = "rich-tree"
	// ConfigFileName is the local configuration file looked up in the working directory.
	ConfigFileName = ".rich-tree.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".rich-tree"
	// GlobalConfigFileName is the configuration file inside GlobalConfigDirectoryName.
	GlobalConfigFileName = "config.yaml"
	// HiddenEntryPrefix marks hidden files and directories.
	HiddenEntryPrefix = "."

	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	ApplicationExecutionFailedMessage       = "rich-tree failed"
)
