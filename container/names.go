package container

// Core service keys bound by the application.
const (
	KeyApp       = "app"
	KeyContainer = "container"
	KeyConfig    = "config"
	KeyEvents    = "events"
	KeyFiles     = "files"
	KeyLog       = "log"
	KeyEncrypter = "encrypter"
	KeyTelemetry = "telemetry"
	KeyMetrics   = "metrics"
)

// Path keys bound by the application.
const (
	KeyPath         = "path"
	KeyPathBase     = "path.base"
	KeyPathConfig   = "path.config"
	KeyPathDatabase = "path.database"
	KeyPathStorage  = "path.storage"
)
