package shortener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

var (
	errNotAbsolute = errors.New("not an absolute url")
	errNoHostname  = errors.New("missing hostname")
	errNoAddresses = errors.New("host resolved to no addresses")
	errBadPort     = errors.New("port out of range")
)

// hostProfile maps hostnames the way browsers do: UTS 46 non-transitional,
// underscores and leading or trailing hyphens allowed.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
)

// tabOrNewline is removed anywhere in the input before parsing.
var tabOrNewline = strings.NewReplacer("\t", "", "\n", "", "\r", "")

func isC0OrSpace(r rune) bool {
	return r <= ' '
}

// HostResolver confirms that a hostname exists. *net.Resolver satisfies it.
type HostResolver interface {
	LookupHost(ctx context.Context, host string) (addrs []string, err error)
}

// ParseCandidate parses raw as an absolute http or https URL with an authority.
// Leading and trailing control characters and spaces are ignored, as are tabs
// and newlines anywhere. The host of the returned URL is in ASCII form.
// The returned error matches ErrInvalidURL.
func ParseCandidate(raw string) (*url.URL, error) {
	u, err := url.Parse(tabOrNewline.Replace(strings.TrimFunc(raw, isC0OrSpace)))
	if err != nil {
		return nil, invalid(ReasonMalformed, err)
	}

	// Scheme-less input and opaque forms like "mailto:x" carry no authority.
	if u.Scheme == "" || u.Host == "" {
		if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
			return nil, invalid(ReasonScheme, fmt.Errorf("scheme %q not allowed", u.Scheme))
		}

		return nil, invalid(ReasonMalformed, errNotAbsolute)
	}

	// url.Parse lowercases the scheme.
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, invalid(ReasonScheme, fmt.Errorf("scheme %q not allowed", u.Scheme))
	}

	if u.Hostname() == "" {
		return nil, invalid(ReasonMalformed, errNoHostname)
	}

	if err = normalizeHost(u); err != nil {
		return nil, invalid(ReasonMalformed, err)
	}

	return u, nil
}

// normalizeHost checks the port range and converts an internationalized
// hostname to its ASCII form so it can be looked up.
func normalizeHost(u *url.URL) error {
	port := u.Port()
	if port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n > 65535 {
			return fmt.Errorf("%w: %s", errBadPort, port)
		}
	}

	host := u.Hostname()
	if net.ParseIP(host) != nil {
		return nil
	}

	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return fmt.Errorf("hostname %q: %w", host, err)
	}

	if port != "" {
		u.Host = net.JoinHostPort(ascii, port)
	} else {
		u.Host = ascii
	}

	return nil
}

// ParseShortID parses a base 10 short identifier. Syntax errors match
// ErrNotAnInteger; integers outside the int64 range match ErrNotFound since no
// entry can carry them.
func ParseShortID(raw string) (ShortID, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, raw)
		}

		return 0, fmt.Errorf("%w: %q", ErrNotAnInteger, raw)
	}

	return ShortID(n), nil
}
