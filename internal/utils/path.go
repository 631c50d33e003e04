package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds the dataset and config files relative to the binary,
// the working directory and the platform config dir.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     platformConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// platformConfigDir returns the appropriate config directory for the platform
func platformConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "lexserve")
		}
		return filepath.Join(homeDir, ".config", "lexserve")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "lexserve")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "lexserve")
	default:
		return filepath.Join(homeDir, ".config", "lexserve")
	}
}

// DataFileCandidates lists where a dataset named by the user may live, in
// order of preference:
// 1. the path itself (absolute, or relative to the working directory)
// 2. relative to the executable directory
// 3. inside the config dir
func (pr *PathResolver) DataFileCandidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}
	candidates := []string{userPath, filepath.Join(pr.executableDir, userPath)}
	candidates = append(candidates, filepath.Join(pr.configDir, filepath.Base(userPath)))
	return candidates
}

// GetDataFile returns the first existing candidate for userPath. When none
// exists the path itself is returned so the caller reports a useful error.
func (pr *PathResolver) GetDataFile(userPath string) string {
	for _, path := range pr.DataFileCandidates(userPath) {
		if FileExists(path) {
			log.Debugf("Found dataset: %s", path)
			return path
		}
		log.Debugf("Dataset candidate not found: %s", path)
	}
	return userPath
}
