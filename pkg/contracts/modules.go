package contracts

const (
	ConfigModuleName   = "config"
	LoggerModuleName   = "logger"
	EventBusModuleName = "events"
)
