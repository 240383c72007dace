package browse

import (
	"fmt"
	"strings"

	"mapbrowse/internal/model"
)

// Script synthesizes the driver program text. scriptPath is the temporary
// file the text will be written to; the script assigns it back to the
// analyzer so the browser runner can find its own source if it needs to
// re-launch under the rendering server.
//
// Given identical (files, colormap, browser) the output is byte-identical
// except for scriptPath.
func Script(req model.Request, scriptPath string) string {
	var b strings.Builder
	b.WriteString("from tramway.analyzer import *\n")
	b.WriteString("from selenium import webdriver\n")
	b.WriteString("\n")
	b.WriteString("a = RWAnalyzer()\n")
	fmt.Fprintf(&b, "a.spt_data = spt_data.from_rwa_files(%s)\n", quoteAll(req.Files))
	fmt.Fprintf(&b, "a.script = '%s'\n", scriptPath)
	if req.Colormap != "" {
		fmt.Fprintf(&b, "a.browser.colormap = '%s'\n", req.Colormap)
	}
	fmt.Fprintf(&b, "a.browser.show_maps(webdriver=webdriver.%s)\n", req.Browser)
	return b.String()
}

// quoteAll joins values into a single-quoted, comma-separated literal list.
// Values are not escaped; patterns containing quote characters are out of
// contract.
func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}
