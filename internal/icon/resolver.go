// Package icon maps entry websites to local icon files.
//
// Resolvers never fetch image bytes. The default resolver only derives a
// file name from the website host and checks that it exists under the
// configured icon directory.
package icon

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=resolver.go -destination=../mock/icon_resolver_mock.go -package=mock

// Resolver returns the local icon path for a website.
type Resolver interface {
	// Resolve reports the icon path for website and whether the file exists.
	Resolve(website string) (string, bool)
}

type hostIconResolver struct {
	dir string
}

// NewResolver returns a Resolver that looks up <dir>/<host>.png.
func NewResolver(dir string) Resolver {
	return &hostIconResolver{dir: dir}
}

func (r *hostIconResolver) Resolve(website string) (string, bool) {
	host := Host(website)
	if host == "" {
		return "", false
	}

	path := filepath.Join(r.dir, host+".png")
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// Host extracts the lowercase host of website without a leading "www.".
// Websites stored without a scheme ("example.com/login") are accepted.
func Host(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return ""
	}
	if !strings.Contains(website, "://") {
		website = "https://" + website
	}

	u, err := url.Parse(website)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	if strings.ContainsAny(host, `/\`) || host == "." || host == ".." {
		return ""
	}
	return host
}
