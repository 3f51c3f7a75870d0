package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers               = "users"
	TableCustomers           = "customers"
	TableKeySystems          = "key_systems"
	TableOrders              = "orders"
	TableKeyReceipts         = "key_receipts"
	TableManufacturingOrders = "manufacturing_orders"
	TableInvoices            = "invoices"
	TablePermissions         = "permissions"
	TableUserLogs            = "user_logs"
	TableKeyCatalog          = "key_catalog"
	TableKeyCatalog2         = "key_catalog2"
	TableSettings            = "settings"

	// Activity types recorded in user_logs
	ActivityLogin          = "login"
	ActivityLogout         = "logout"
	ActivityOrderCreated   = "order_created"
	ActivityOrderDeleted   = "order_deleted"
	ActivityBackupCreated  = "backup_created"
	ActivityBackupRestored = "backup_restored"
	ActivityRoleChanged    = "role_changed"

	// Well-known files
	SettingsFile     = "data/app_settings.json"
	BackupConfigFile = "data/backup_config.json"
	VersionFile      = "version.json"
	CompanyLogoFile  = "assets/company_logo.png"

	// Backup artifact name prefix, kept from the legacy application so
	// existing backup directories stay recognizable.
	BackupPrefix = "nyckelhanteraren_backup_"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
