package deploy

import "fmt"

// NetlifyInstructions returns step-by-step drag-and-drop instructions for
// publishing bundleDir on Netlify. Netlify has no stable unauthenticated
// API for one-shot deploys, so the manual flow is the dependable path.
func NetlifyInstructions(bundleDir string) string {
	return fmt.Sprintf(`To deploy on Netlify:
  1. Open https://app.netlify.com/drop in your browser
  2. Drag the folder below onto the page:
       %s
  3. Netlify publishes it and shows the live URL

The folder is self-contained (index.html plus thumbnails), so no build
settings are needed.`, bundleDir)
}
