package kernel

import (
	"fmt"
	"net/url"
	"strings"

	"storefront/internal/pkg/errs"
)

// ValidateHTTPURL checks that raw is an absolute http or https URL with a host.
// paramName is used in the returned validation error.
func ValidateHTTPURL(paramName, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not an absolute http(s) URL", raw))
	}
	return nil
}
