package model

import (
	"fmt"
	"strings"
)

// Browser identifies a browser-automation backend by its driver class name.
// The driver script instantiates the backend by this exact name, so no
// aliasing or case folding is applied.
type Browser string

const (
	Firefox   Browser = "Firefox"
	Chrome    Browser = "Chrome"
	Edge      Browser = "Edge"
	Ie        Browser = "Ie"
	Opera     Browser = "Opera"
	Safari    Browser = "Safari"
	WebKitGTK Browser = "WebKitGTK"
)

// browsers is the closed set of supported backends.
var browsers = []Browser{Firefox, Chrome, Edge, Ie, Opera, Safari, WebKitGTK}

// ParseBrowser validates name against the supported set.
func ParseBrowser(name string) (Browser, error) {
	for _, b := range browsers {
		if string(b) == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown browser %q (choose from %s)", name, BrowserNames())
}

// BrowserNames returns the supported backend names for usage text.
func BrowserNames() string {
	names := make([]string, len(browsers))
	for i, b := range browsers {
		names[i] = string(b)
	}
	return strings.Join(names, ", ")
}
