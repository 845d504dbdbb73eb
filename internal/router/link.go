package router

import (
	"net/url"
	"strings"
)

// Link is the result of classifying a navigation request
type Link struct {
	// Internal links are handled with push-state and never leave the app
	Internal bool
	// URL is the resolved target for internal links
	URL *url.URL
	// Href is the original target for external links
	Href string
}

// Classify decides whether href stays inside the application. Relative
// references and absolute URLs on origin's scheme and host are internal;
// everything else is external and should be opened as a normal load.
func Classify(origin *url.URL, href string) (Link, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return Link{}, err
	}

	if !ref.IsAbs() && ref.Host == "" {
		u, err := Resolve(origin, href)
		if err != nil {
			return Link{}, err
		}
		return Link{Internal: true, URL: u}, nil
	}

	if origin != nil && strings.EqualFold(ref.Scheme, origin.Scheme) && strings.EqualFold(ref.Host, origin.Host) {
		u := cloneURL(ref)
		if u.Path == "" {
			u.Path = "/"
		}
		return Link{Internal: true, URL: u}, nil
	}

	return Link{Internal: false, Href: ref.String()}, nil
}
