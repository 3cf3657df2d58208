package constants

// Версия и коммит задаются при сборке:
//
//	go build -ldflags "-X github.com/Kargones/glclient/internal/constants.Version=1.2.0 \
//	  -X github.com/Kargones/glclient/internal/constants.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "dev"
	Commit  = "unknown"
)
