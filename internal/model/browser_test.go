package model

import (
	"strings"
	"testing"
)

func TestParseBrowser_AcceptsClosedSet(t *testing.T) {
	for _, name := range []string{"Firefox", "Chrome", "Edge", "Ie", "Opera", "Safari", "WebKitGTK"} {
		b, err := ParseBrowser(name)
		if err != nil {
			t.Errorf("ParseBrowser(%q): %v", name, err)
		}
		if string(b) != name {
			t.Errorf("ParseBrowser(%q) = %q", name, b)
		}
	}
}

func TestParseBrowser_RejectsEverythingElse(t *testing.T) {
	for _, name := range []string{"", "firefox", "Netscape", "CHROME", "chrome "} {
		if _, err := ParseBrowser(name); err == nil {
			t.Errorf("ParseBrowser(%q) should fail", name)
		}
	}
}

func TestBrowserNames_ListsAllBackends(t *testing.T) {
	names := BrowserNames()
	for _, want := range []string{"Firefox", "Chrome", "Edge", "Ie", "Opera", "Safari", "WebKitGTK"} {
		if !strings.Contains(names, want) {
			t.Errorf("BrowserNames() missing %s: %s", want, names)
		}
	}
}
