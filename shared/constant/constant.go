package constant

const (
	RequestParamID = "id"
)

const (
	// DateLayoutUS matches the M/D/YYYY cell format the legacy sheet uses.
	DateLayoutUS = "1/2/2006"
	// DateLayoutISO is accepted on input from the intake form.
	DateLayoutISO = "2006-01-02"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverXlsx     = "xlsx"
	StoreDriverPostgres = "postgres"
)

const (
	BookingIDGeneratorLegacy = "legacy"
	BookingIDGeneratorRandom = "random"
)

const (
	DefaultRoomsSheet = "Rooms"
)

const (
	OtelServiceScopeName = "service"
	OtelStoreScopeName   = "store"
	OtelHandlerScopeName = "handler"
	OtelHTTPScopeName    = "http"
)

const (
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
	RequestHeaderRealIP      = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
