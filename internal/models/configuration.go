package models

type Configuration struct {
	App      AppConfiguration      `mapstructure:"app"      validate:"required"`
	Database DatabaseConfiguration `mapstructure:"database" validate:"required"`
	Cache    CacheConfiguration    `mapstructure:"cache"    validate:"required"`
	Waitlist WaitlistConfiguration `mapstructure:"waitlist" validate:"required"`
	Notifier NotifierConfiguration `mapstructure:"notifier" validate:"required"`
	Activity ActivityConfiguration `mapstructure:"activity" validate:"required"`
}

type AppConfiguration struct {
	AdminEmail        string   `mapstructure:"admin_email"         validate:"required,email"`
	AdminPassword     string   `mapstructure:"admin_password"      validate:"required"`
	APIURL            string   `mapstructure:"api_url"             validate:"required"`
	AllowedOrigins    []string `mapstructure:"allowed_origins"     validate:"required"`
	JWTSecret         string   `mapstructure:"jwt_secret"          validate:"required"`
	AccessTokenExpiry int      `mapstructure:"access_token_expiry" validate:"gte=1,lte=1440"`
	LogLevel          string   `mapstructure:"log_level"           validate:"oneof=debug info warn error fatal panic"`
	Port              int      `mapstructure:"port"                validate:"gte=80,lte=65535"`
	RequestsPerMinute int      `mapstructure:"requests_per_minute" validate:"gte=1"`
	TrustedProxies    []string `mapstructure:"trusted_proxies"     validate:"required"`
	WebURL            string   `mapstructure:"web_url"             validate:"required"`
}

type DatabaseConfiguration struct {
	Host     string `mapstructure:"host"     validate:"required"`
	Port     int32  `mapstructure:"port"     validate:"gte=80,lte=65535"`
	User     string `mapstructure:"user"     validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name"     validate:"required"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CacheConfiguration struct {
	Type   string                    `mapstructure:"type"   validate:"required,oneof=redis valkey"`
	Redis  *RedisCacheConfiguration  `mapstructure:"redis"  validate:"required_if=Type redis"`
	Valkey *ValkeyCacheConfiguration `mapstructure:"valkey" validate:"required_if=Type valkey"`
}

type RedisCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type ValkeyCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

// WaitlistConfiguration bounds the public waitlist endpoint: Ceiling attempts
// per identifier within a trailing WindowHours window.
type WaitlistConfiguration struct {
	Ceiling              int `mapstructure:"ceiling"                validate:"gte=1,lte=1000"`
	WindowHours          int `mapstructure:"window_hours"           validate:"gte=1,lte=720"`
	CleanupIntervalHours int `mapstructure:"cleanup_interval_hours" validate:"gte=1,lte=720"`
	RetentionMultiple    int `mapstructure:"retention_multiple"     validate:"gte=1,lte=100"`
}

type NotifierConfiguration struct {
	Type       string                           `mapstructure:"type"       validate:"required,oneof=smtp filesystem"`
	SMTP       *SMTPNotifierConfiguration       `mapstructure:"smtp"       validate:"required_if=Type smtp"`
	Filesystem *FilesystemNotifierConfiguration `mapstructure:"filesystem" validate:"required_if=Type filesystem"`
}

type SMTPNotifierConfiguration struct {
	Host          string `mapstructure:"host"            validate:"required"`
	Port          int    `mapstructure:"port"            validate:"gte=1,lte=65535"`
	Username      string `mapstructure:"username"`
	Password      string `mapstructure:"password"`
	FromAddress   string `mapstructure:"from_address"    validate:"required,email"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
	SkipVerifyTLS bool   `mapstructure:"skip_verify_tls"`
}

type FilesystemNotifierConfiguration struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type ActivityConfiguration struct {
	Type       string                           `mapstructure:"type"       validate:"required,oneof=filesystem"`
	Filesystem *FilesystemActivityConfiguration `mapstructure:"filesystem" validate:"required_if=Type filesystem"`
}

type FilesystemActivityConfiguration struct {
	Directory string `mapstructure:"directory" validate:"required"`
}
