// Package route parses the application's navigation targets.
//
// "/" is the cube overview, optionally "/?from=<face>" to start squared on
// the face just left. "/<face>" is a face page.
package route

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Faultbox/cubefolio/internal/cube"
)

// ErrUnknownRoute is returned for paths that name neither the overview nor a face.
var ErrUnknownRoute = errors.New("unknown route")

// Route is a parsed navigation target.
type Route struct {
	// Page is set for face pages.
	Page    cube.Face
	HasPage bool
	// From is the face an overview was entered from. An invalid from value is
	// dropped rather than rejected.
	From    cube.Face
	HasFrom bool
}

// Overview returns the overview route.
func Overview() Route {
	return Route{}
}

// OverviewFrom returns the overview route remembering face.
func OverviewFrom(face cube.Face) Route {
	return Route{From: face, HasFrom: true}
}

// Page returns the route of a face page.
func Page(face cube.Face) Route {
	return Route{Page: face, HasPage: true}
}

// Parse parses a route string.
func Parse(s string) (Route, error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return Route{}, fmt.Errorf("%w: %v", ErrUnknownRoute, err)
	}

	p := strings.Trim(u.Path, "/")
	if p == "" {
		r := Overview()
		if from := u.Query().Get("from"); from != "" {
			if f, err := cube.Parse(from); err == nil {
				r = OverviewFrom(f)
			}
		}
		return r, nil
	}

	f, err := cube.Parse(p)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, s)
	}
	return Page(f), nil
}

// String formats the route the way Parse accepts it.
func (r Route) String() string {
	switch {
	case r.HasPage:
		return r.Page.Route()
	case r.HasFrom:
		return "/?from=" + r.From.String()
	default:
		return "/"
	}
}
