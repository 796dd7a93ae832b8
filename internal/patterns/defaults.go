package patterns

type builtin struct {
	name string
	expr string
}

// Built-in expressions, applied in this order. Names may repeat; every entry
// is applied.
var builtins = []builtin{
	{"API Key", `(?i)apikey\s*=\s*['"][A-Za-z0-9]{10,}['"]`},
	{"Auth Token", `(?i)token\s*=\s*['"][A-Za-z0-9_-]{10,}['"]`},
	{"Bearer Token", `Bearer\s+[A-Za-z0-9_-]{20,}`},

	// cloud and service credentials
	{"Access Key", `(?i)ACCESS_KEY\s*=\s*['"][A-Za-z0-9_-]+['"]`},
	{"Client ID", `(?i)CLIENT_ID\s*=\s*['"][0-9]+-[A-Za-z0-9]+\.apps\.googleusercontent\.com['"]`},
	{"Client Secret", `(?i)CLIENT_SECRET\s*=\s*['"][A-Za-z0-9_-]{24,}['"]`},

	// generic keys
	{"API Key", `(?i)API_KEY\s*=\s*['"][A-Za-z0-9_-]{20,}['"]`},
	{"Service API Key", `[A-Za-z0-9]{30,}`},

	// database connection fields
	{"Database URL", `(?i)DATABASE_URL\s*=\s*['"][^'"]+['"]`},
	{"Database User", `(?i)_USER\s*=\s*['"][A-Za-z0-9]+['"]`},
	{"Database Password", `(?i)_PASSWORD\s*=\s*['"][^'"]{6,}['"]`},
	{"Database Host", `(?i)_HOST\s*=\s*['"][^'"]+['"]`},
	{"Database Port", `_PORT\s*=\s*\d{4,5}`},
	{"Database Name", `(?i)_DB\s*=\s*['"][A-Za-z0-9]+['"]`},

	// passwords and secrets
	{"Basic Password", `(?i)password\s*=\s*['"][^'"]{6,}['"]`},
	{"Session Secret", `(?i)SESSION_SECRET\s*=\s*['"][A-Za-z0-9_-]+['"]`},
	{"SSH Key", `ssh-rsa\s+[A-Za-z0-9+/=]+`},

	{"JWT", `eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`},
}

// Dependency, build and VCS directories plus lock and secret files that are
// never traversed.
var defaultIgnored = []string{
	"node_modules",
	".git",
	"dist",
	"build",
	"coverage",
	".env",
	"package-lock.json",
}
