package router

import (
	"net/url"
	"strings"

	"github.com/julianstephens/uvcast/internal/constants"
)

// Route is a parsed location identifying the active postal code
type Route struct {
	PostalCode string `json:"postal_code"`
}

// Parse matches /zipcode/{code} where code is one non-empty path segment.
// A single trailing slash is tolerated.
func Parse(u *url.URL) (Route, bool) {
	if u == nil {
		return Route{}, false
	}

	p := u.EscapedPath()
	if !strings.HasPrefix(p, constants.RoutePrefix) {
		return Route{}, false
	}
	seg := strings.TrimPrefix(p, constants.RoutePrefix)
	seg = strings.TrimSuffix(seg, "/")
	if seg == "" || strings.Contains(seg, "/") {
		return Route{}, false
	}

	code, err := url.PathUnescape(seg)
	if err != nil || code == "" {
		return Route{}, false
	}
	return Route{PostalCode: code}, true
}

// ParseLocation parses a raw path ("/zipcode/12345") or absolute URL.
func ParseLocation(location string) (Route, bool) {
	u, err := url.Parse(strings.TrimSpace(location))
	if err != nil {
		return Route{}, false
	}
	return Parse(u)
}

// Path builds the routed path for postalCode
func Path(postalCode string) string {
	return constants.RoutePrefix + url.PathEscape(postalCode)
}

// Origin returns the application origin used for links and the address bar
func Origin() *url.URL {
	u, _ := url.Parse(constants.AppOrigin)
	return u
}

// Resolve turns a path or URL into an absolute URL on origin.
func Resolve(origin *url.URL, location string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimSpace(location))
	if err != nil {
		return nil, err
	}
	if origin == nil {
		return ref, nil
	}
	u := origin.ResolveReference(ref)
	if u.Path == "" {
		u.Path = constants.HomePath
	}
	return u, nil
}
