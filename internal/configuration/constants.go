package configuration

const AppName = "casaflow"

// JWT token expiry (in minutes).
const AccessTokenExpiry = 60

const (
	CacheAppRateLimitKey = "app:ratelimit:%s"
)

// Waitlist attempt-window defaults: at most WaitlistDefaultCeiling accepted
// attempts per identifier within the trailing WaitlistDefaultWindowHours.
const (
	WaitlistDefaultCeiling     = 5
	WaitlistDefaultWindowHours = 24
)

// EventsNotifications is the in-process topic carrying domain events to the
// notifications worker.
const EventsNotifications = "notifications"

type RouteRule struct {
	Method string
	Path   string
}

// PublicRoutes bypass the Authenticate middleware. Everything else under
// /api requires a bearer token.
var PublicRoutes = []RouteRule{
	{Method: "POST", Path: "/api/waitlist"},
	{Method: "POST", Path: "/api/auth/login"},
}

var ConfigFileSearchPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/casaflow/config.yaml",
}

// ArrayConfigFields are env-provided values that must be coerced from a
// delimited string into a string slice before unmarshalling.
var ArrayConfigFields = []string{
	"app.allowed_origins",
	"app.trusted_proxies",
	"cache.redis.hosts",
	"cache.valkey.hosts",
}
