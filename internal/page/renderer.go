package page

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/creachadair/atomicfile"
)

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// Render writes index.html for the given page data into destDir. The write
// is atomic so a crash never leaves a truncated page behind.
func Render(data Data, destDir string) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}

	path := filepath.Join(destDir, "index.html")
	f, err := atomicfile.New(path, 0644)
	if err != nil {
		return "", fmt.Errorf("create page file: %w", err)
	}
	defer f.Cancel()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return "", fmt.Errorf("write page: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("commit page: %w", err)
	}

	return path, nil
}
