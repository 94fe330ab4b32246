package constant

const (
	RequestParamID  = "id"
	RequestParamUID = "uid"
)

const (
	RequestHeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
