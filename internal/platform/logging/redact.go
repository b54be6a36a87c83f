package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// SecretTag marks struct fields redacted when logged, as in
// `masq:"secret"`.
const SecretTag = "secret"

// sensitiveHeaders are lowercase HTTP header names whose values are
// credentials or signatures.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"cookie",
	"set-cookie",
	"x-api-key",
	"x-webhook-signature",
}

var sensitiveFields = []string{"password", "secret", "token", "signature"}

var (
	bearerPattern    = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	jwtPattern       = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyPattern    = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
	signaturePattern = regexp.MustCompile(`sha256=[0-9a-fA-F]{16,}`)
)

// IsSensitiveHeader reports whether the named header must not be logged.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

func newRedactor() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithTag(SecretTag),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyPattern),
		masq.WithRegex(signaturePattern),
	}
	for _, name := range slices.Concat(sensitiveHeaders, sensitiveFields) {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
