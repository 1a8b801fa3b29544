// Package deploy publishes a generated bundle, either to GitHub Pages via
// git or by printing Netlify drag-and-drop instructions.
package deploy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/bundle"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/config"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/logger"
	"github.com/phamtuanthanh31072004/highlight-flow/pkg/executor"
)

type GitHubDeployer struct {
	cfg      config.DeployConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewGitHub creates a GitHubDeployer instance.
func NewGitHub(cfg config.DeployConfig, exec executor.Executor, log logger.Logger) *GitHubDeployer {
	return &GitHubDeployer{cfg: cfg, executor: exec, logger: log}
}

// Deploy copies sourceDir into the local pages repository under deployPath,
// regenerates the collection index, commits and pushes. Returns the public
// URL of the deployed page.
func (d *GitHubDeployer) Deploy(ctx context.Context, sourceDir, deployPath, message string) (string, error) {
	if d.cfg.Username == "" {
		return "", fmt.Errorf("deploy.username is not configured")
	}

	repoPath, err := d.repoPath()
	if err != nil {
		return "", err
	}

	if err := d.ensureRepo(ctx, repoPath); err != nil {
		return "", fmt.Errorf("set up repository: %w", err)
	}

	target := filepath.Join(repoPath, deployPath)
	if err := copyDir(sourceDir, target); err != nil {
		return "", fmt.Errorf("copy bundle into repository: %w", err)
	}

	if err := d.writeCollectionIndex(repoPath); err != nil {
		return "", fmt.Errorf("update collection index: %w", err)
	}

	if err := d.commitAndPush(ctx, repoPath, message); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.github.io/%s/%s/", d.cfg.Username, d.cfg.Repo, deployPath), nil
}

func (d *GitHubDeployer) repoPath() (string, error) {
	if d.cfg.RepoDir != "" {
		return filepath.Join(d.cfg.RepoDir, d.cfg.Repo), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, "sites", d.cfg.Repo), nil
}

// ensureRepo makes repoPath a usable git checkout: clone if possible,
// otherwise init a fresh repository with the pages scaffolding.
func (d *GitHubDeployer) ensureRepo(ctx context.Context, repoPath string) error {
	remoteURL := fmt.Sprintf("https://github.com/%s/%s.git", d.cfg.Username, d.cfg.Repo)

	if _, err := os.Stat(filepath.Join(repoPath, ".git")); err == nil {
		return nil
	}

	if _, err := os.Stat(repoPath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(repoPath), 0755); err != nil {
			return fmt.Errorf("create parent dir: %w", err)
		}
		d.logger.Info(ctx, "Cloning %s", remoteURL)
		if _, err := d.executor.Execute(ctx, "git", "clone", remoteURL, repoPath); err == nil {
			return nil
		}
		d.logger.Warn(ctx, "Clone failed, initializing a new repository")
	}

	if err := os.MkdirAll(repoPath, 0755); err != nil {
		return fmt.Errorf("create repo dir: %w", err)
	}
	if _, err := d.executor.ExecuteInDir(ctx, repoPath, "git", "init"); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	if _, err := d.executor.ExecuteInDir(ctx, repoPath, "git", "remote", "add", "origin", remoteURL); err != nil {
		d.logger.Debug(ctx, "git remote add failed (may already exist): %v", err)
	}

	// .nojekyll keeps GitHub Pages from running the bundle through Jekyll.
	if err := os.WriteFile(filepath.Join(repoPath, ".nojekyll"), nil, 0644); err != nil {
		return fmt.Errorf("write .nojekyll: %w", err)
	}

	return nil
}

func (d *GitHubDeployer) commitAndPush(ctx context.Context, repoPath, message string) error {
	if _, err := d.executor.ExecuteInDir(ctx, repoPath, "git", "add", "."); err != nil {
		return fmt.Errorf("git add: %w", err)
	}

	out, err := d.executor.ExecuteInDir(ctx, repoPath, "git", "commit", "-m", message)
	if err != nil {
		if strings.Contains(out, "nothing to commit") || strings.Contains(err.Error(), "nothing to commit") {
			d.logger.Info(ctx, "No changes to commit")
			return nil
		}
		return fmt.Errorf("git commit: %w", err)
	}

	d.logger.Info(ctx, "Pushing to GitHub...")
	pushAttempts := [][]string{
		{"push", "origin", "main"},
		{"push", "origin", "master"},
		{"push", "-u", "origin", "main"},
	}
	var lastErr error
	for _, args := range pushAttempts {
		if _, err := d.executor.ExecuteInDir(ctx, repoPath, "git", args...); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}

	return fmt.Errorf("git push: %w\n%s", lastErr, d.remediation(repoPath))
}

// remediation is printed when a push fails so the user can finish by hand.
func (d *GitHubDeployer) remediation(repoPath string) string {
	return fmt.Sprintf(`Push failed. To finish the deployment manually:
  1. Create the repository at https://github.com/new (name: %s, public)
  2. cd %s
  3. git push -u origin main`, d.cfg.Repo, repoPath)
}

// writeCollectionIndex regenerates the root index.html linking every
// deployed highlight page, newest first.
func (d *GitHubDeployer) writeCollectionIndex(repoPath string) error {
	var pages []string
	err := filepath.WalkDir(repoPath, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() && entry.Name() == ".git" {
			return filepath.SkipDir
		}
		if !entry.IsDir() && entry.Name() == "index.html" && filepath.Dir(path) != repoPath {
			rel, err := filepath.Rel(repoPath, filepath.Dir(path))
			if err != nil {
				return err
			}
			pages = append(pages, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return err
	}

	sort.Sort(sort.Reverse(sort.StringSlice(pages)))

	var links strings.Builder
	if len(pages) == 0 {
		links.WriteString("<p>No highlights yet.</p>\n")
	}
	for _, p := range pages {
		fmt.Fprintf(&links, `<li><a href="%s/">%s</a></li>`+"\n", p, p)
	}

	html := fmt.Sprintf(collectionIndexHTML, links.String())
	return os.WriteFile(filepath.Join(repoPath, "index.html"), []byte(html), 0644)
}

const collectionIndexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Video Highlights Collection</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
       background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%);
       min-height: 100vh; padding: 40px 20px; color: white; }
.container { max-width: 800px; margin: 0 auto; }
h1 { text-align: center; margin-bottom: 30px; }
ul { list-style: none; padding: 0; }
li { background: rgba(255,255,255,0.12); border-radius: 10px; margin-bottom: 10px; }
li a { display: block; padding: 14px 18px; color: white; text-decoration: none; }
</style>
</head>
<body>
<div class="container">
<h1>Video Highlights Collection</h1>
<ul>
%s</ul>
</div>
</body>
</html>
`

func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := bundle.CopyFile(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
